package main

import (
	"context"
	"fmt"
	"os"

	"ferrum_seed/src"
	"ferrum_seed/src/fixtures"
	"ferrum_seed/src/logger"
	"ferrum_seed/src/seed"
	"ferrum_seed/src/storage"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional, the container usually passes real environment variables
	envErr := godotenv.Load()

	config, err := src.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	if err := logger.InitLogger(config.LogConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		return 1
	}
	if envErr != nil {
		logger.Debug().Err(envErr).Msg("No .env file loaded")
	}

	set, err := fixtures.Load(config.SeedConfig.FixturesFile)
	if err != nil {
		logger.Error().Err(err).Str("file", config.SeedConfig.FixturesFile).Msg("Failed to load fixtures")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.SeedConfig.Timeout)
	defer cancel()

	redis, err := storage.NewRedisStorage(ctx, config.RedisConfig)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create Redis storage")
		return 1
	}
	defer redis.Close()

	seeder := seed.NewSeeder(redis, config.SeedConfig, set, redis.Addr())
	if _, err := seeder.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Seeding failed")
		return 1
	}

	if config.SeedConfig.Verify {
		mismatches, err := seeder.Verify(ctx, redis)
		if err != nil {
			logger.Error().Err(err).Msg("Verification failed")
			return 1
		}
		for _, m := range mismatches {
			logger.Warn().Str("key", m.Key).Msg(m.String())
		}
		if len(mismatches) > 0 {
			return 1
		}
	}

	return 0
}
