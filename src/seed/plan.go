package seed

import (
	"fmt"

	"ferrum_seed/src/fixtures"
	"ferrum_seed/src/model"
	"ferrum_seed/src/storage"
)

type WriteKind string

const (
	SetString  WriteKind = "set"
	PushToList WriteKind = "rpush"
)

// Write is a single store command of a seeding run
type Write struct {
	Kind  WriteKind
	Key   string
	Value string
}

// Plan builds the ordered list of writes for a fixture set: realms first,
// then clients and their realm lists, then users and their realm lists.
// Each realm list receives one element, a JSON array of identifiers.
// Realms without users get no user list.
func Plan(namespace string, set *model.FixtureSet) ([]Write, error) {
	var writes []Write

	for _, r := range set.Realms {
		value, err := fixtures.Encode(r.Realm)
		if err != nil {
			return nil, fmt.Errorf("realm %s: %w", r.Key, err)
		}
		writes = append(writes, Write{Kind: SetString, Key: storage.RealmKey(namespace, r.Key), Value: value})
	}

	for _, r := range set.Realms {
		for _, c := range r.Clients {
			value, err := fixtures.Encode(c.Client)
			if err != nil {
				return nil, fmt.Errorf("client %s of realm %s: %w", c.Key, r.Key, err)
			}
			writes = append(writes, Write{Kind: SetString, Key: storage.ClientKey(namespace, r.Key, c.Key), Value: value})
		}
	}

	for _, r := range set.Realms {
		if len(r.Clients) == 0 {
			continue
		}
		ids := make([]model.ExtendedIdentifier, 0, len(r.Clients))
		for _, c := range r.Clients {
			ids = append(ids, model.ExtendedIdentifier{ID: c.Client.ID, Name: c.Key})
		}
		value, err := fixtures.Encode(ids)
		if err != nil {
			return nil, fmt.Errorf("clients of realm %s: %w", r.Key, err)
		}
		writes = append(writes, Write{Kind: PushToList, Key: storage.RealmClientsKey(namespace, r.Key), Value: value})
	}

	for _, r := range set.Realms {
		for _, u := range r.Users {
			value, err := fixtures.Encode(u.User)
			if err != nil {
				return nil, fmt.Errorf("user %s of realm %s: %w", u.Key, r.Key, err)
			}
			writes = append(writes, Write{Kind: SetString, Key: storage.UserKey(namespace, r.Key, u.Key), Value: value})
		}
	}

	for _, r := range set.Realms {
		if len(r.Users) == 0 {
			continue
		}
		ids := make([]model.ExtendedIdentifier, 0, len(r.Users))
		for _, u := range r.Users {
			ids = append(ids, model.ExtendedIdentifier{ID: u.User.Info.Sub, Name: u.Key})
		}
		value, err := fixtures.Encode(ids)
		if err != nil {
			return nil, fmt.Errorf("users of realm %s: %w", r.Key, err)
		}
		writes = append(writes, Write{Kind: PushToList, Key: storage.RealmUsersKey(namespace, r.Key), Value: value})
	}

	return writes, nil
}
