package seed

import (
	"context"
	"fmt"
	"reflect"

	"ferrum_seed/src/logger"

	"github.com/bytedance/sonic"
)

// Reader is what Verify needs to read seeded keys back
type Reader interface {
	Get(ctx context.Context, key string) (string, error)
	LRange(ctx context.Context, key string) ([]string, error)
}

// Mismatch describes a key whose content differs from the fixture
type Mismatch struct {
	Key  string
	Want string
	Got  []string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %s, got %v", m.Key, m.Want, m.Got)
}

// Verify reads back every key of the plan and compares its decoded JSON
// content, formatting is ignored. Lists must hold exactly one element.
// A missing key, string or list, is returned as storage.ErrKeyNotFound.
func (s *Seeder) Verify(ctx context.Context, reader Reader) ([]Mismatch, error) {
	writes, err := Plan(s.config.Namespace, s.fixtures)
	if err != nil {
		return nil, fmt.Errorf("failed to build seed plan: %w", err)
	}

	var mismatches []Mismatch
	for _, w := range writes {
		var got []string
		switch w.Kind {
		case SetString:
			value, err := reader.Get(ctx, w.Key)
			if err != nil {
				return nil, err
			}
			got = []string{value}
		case PushToList:
			got, err = reader.LRange(ctx, w.Key)
			if err != nil {
				return nil, err
			}
		}
		if len(got) != 1 || !sameJSON(w.Value, got[0]) {
			mismatches = append(mismatches, Mismatch{Key: w.Key, Want: w.Value, Got: got})
		}
	}

	if len(mismatches) > 0 {
		logger.Warn().Int("mismatches", len(mismatches)).Msg("Seeded data differs from fixtures")
	} else {
		logger.Info().Int("keys", len(writes)).Msg("Seeded data matches fixtures")
	}
	return mismatches, nil
}

// sameJSON reports whether two documents decode to the same value, a value
// that is not valid JSON never matches
func sameJSON(want, got string) bool {
	var wantValue, gotValue any
	if err := sonic.ConfigStd.UnmarshalFromString(want, &wantValue); err != nil {
		return false
	}
	if err := sonic.ConfigStd.UnmarshalFromString(got, &gotValue); err != nil {
		return false
	}
	return reflect.DeepEqual(wantValue, gotValue)
}
