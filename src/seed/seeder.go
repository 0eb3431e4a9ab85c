package seed

import (
	"context"
	"errors"
	"fmt"

	"ferrum_seed/src/logger"
	"ferrum_seed/src/model"
	"ferrum_seed/src/storage"
)

var ErrConnection = errors.New("bad connect to redis")

// Store is the subset of the key-value store a seeding run needs
type Store interface {
	Ping(ctx context.Context) error
	Exists(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string, value string) error
	RPush(ctx context.Context, key string, values ...string) error
}

// Result reports what a run did. Skipped is set when the sentinel key was
// already present, Inserted lists written keys in write order.
type Result struct {
	Skipped  bool
	Sentinel string
	Inserted []string
}

type Seeder struct {
	store    Store
	config   model.SeedConfig
	fixtures *model.FixtureSet
	addr     string
}

// NewSeeder creates a seeder; addr is only used in log messages
func NewSeeder(store Store, config model.SeedConfig, fixtures *model.FixtureSet, addr string) *Seeder {
	return &Seeder{
		store:    store,
		config:   config,
		fixtures: fixtures,
		addr:     addr,
	}
}

// Sentinel returns the key whose existence means data is already loaded
func (s *Seeder) Sentinel() string {
	return storage.RealmKey(s.config.Namespace, s.config.SentinelRealm)
}

// Run seeds the store unless the sentinel key exists. A failed ping stops
// the run before any other command is sent.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	if err := s.store.Ping(ctx); err != nil {
		logger.Error().Err(err).Str("host", s.addr).Msg("Bad connect to redis")
		return nil, fmt.Errorf("%w %s: %v", ErrConnection, s.addr, err)
	}

	sentinel := s.Sentinel()
	exists, err := s.store.Exists(ctx, sentinel)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Info().Str("key", sentinel).
			Msgf("The redis has %q. Data not inserted during initialization.", sentinel)
		return &Result{Skipped: true, Sentinel: sentinel}, nil
	}

	writes, err := Plan(s.config.Namespace, s.fixtures)
	if err != nil {
		return nil, fmt.Errorf("failed to build seed plan: %w", err)
	}

	result := &Result{Sentinel: sentinel, Inserted: make([]string, 0, len(writes))}
	for _, w := range writes {
		if err := s.apply(ctx, w); err != nil {
			logger.Error().Err(err).Str("key", w.Key).Int("written", len(result.Inserted)).Msg("Seeding stopped")
			return result, err
		}
		logger.Debug().Str("op", string(w.Kind)).Str("key", w.Key).Msg("Written")
		result.Inserted = append(result.Inserted, w.Key)
	}

	realms, clients, users := s.fixtures.Counts()
	logger.Info().
		Int("realms", realms).
		Int("clients", clients).
		Int("users", users).
		Int("keys", len(result.Inserted)).
		Msg("Data is inserted into the redis during initialization.")

	return result, nil
}

func (s *Seeder) apply(ctx context.Context, w Write) error {
	switch w.Kind {
	case SetString:
		return s.store.Set(ctx, w.Key, w.Value)
	case PushToList:
		return s.store.RPush(ctx, w.Key, w.Value)
	default:
		return fmt.Errorf("unknown write kind %q for key %s", w.Kind, w.Key)
	}
}
