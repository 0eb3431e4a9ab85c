package seed

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"ferrum_seed/src/storage"

	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Set(ctx context.Context, key string, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *mockStore) RPush(ctx context.Context, key string, values ...string) error {
	return m.Called(ctx, key, values).Error(0)
}

// memStore keeps strings and lists in maps, good enough for end-to-end runs
type memStore struct {
	mu      sync.Mutex
	strings map[string]string
	lists   map[string][]string
	writes  int
}

func newMemStore() *memStore {
	return &memStore{
		strings: map[string]string{},
		lists:   map[string][]string{},
	}
}

func (m *memStore) Ping(context.Context) error { return nil }

func (m *memStore) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, s := m.strings[key]
	_, l := m.lists[key]
	return s || l, nil
}

func (m *memStore) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strings[key] = value
	m.writes++
	return nil
}

func (m *memStore) RPush(_ context.Context, key string, values ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[key] = append(m.lists[key], values...)
	m.writes++
	return nil
}

func (m *memStore) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.strings)+len(m.lists))
	for k := range m.strings {
		keys = append(keys, k)
	}
	for k := range m.lists {
		keys = append(keys, k)
	}
	return keys
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.strings[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", storage.ErrKeyNotFound, key)
	}
	return value, nil
}

func (m *memStore) LRange(_ context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.lists[key]
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", storage.ErrKeyNotFound, key)
	}
	return slices.Clone(items), nil
}
