package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"ferrum_seed/src/model"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixtures []byte

// Default returns the built-in test environment fixtures
func Default() (*model.FixtureSet, error) {
	return Parse(defaultFixtures)
}

// Load reads fixtures from a YAML file, an empty path falls back to Default
func Load(path string) (*model.FixtureSet, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading fixtures file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML fixture document. Unknown fields are rejected so a
// typo in an override file does not silently drop a value.
func Parse(data []byte) (*model.FixtureSet, error) {
	var set model.FixtureSet

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&set); err != nil {
		return nil, fmt.Errorf("error parsing fixtures YAML: %w", err)
	}

	normalize(&set)
	return &set, nil
}

// normalize replaces nil slices so they encode as [] instead of null
func normalize(set *model.FixtureSet) {
	for i := range set.Realms {
		realm := &set.Realms[i]
		if realm.Realm.Clients == nil {
			realm.Realm.Clients = []model.Client{}
		}
		for j := range realm.Users {
			info := &realm.Users[j].User.Info
			if info.Roles == nil {
				info.Roles = []string{}
			}
		}
	}
}

// Encode serializes a record into the JSON string stored under its key
func Encode(v any) (string, error) {
	data, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}
	return string(data), nil
}
