package src

import (
	"ferrum_seed/src/model"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogConfig   model.LogConfig   `envconfig:""`
	RedisConfig model.RedisConfig `envconfig:""`
	SeedConfig  model.SeedConfig  `envconfig:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}

	return &config, nil
}
