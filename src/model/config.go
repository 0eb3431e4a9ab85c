package model

import "time"

// ----------------------------------------------------
// ================ Config ================

// LogConfig holds configuration for the global logger
type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"console"`
	Output     string `envconfig:"LOG_OUTPUT" default:"stdout"`
	FilePath   string `envconfig:"LOG_FILE_PATH" default:"logs/seed.log"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"rfc3339"`
}

// RedisConfig holds the connection settings of the target store.
// URL wins over the discrete fields when it is set.
type RedisConfig struct {
	URL      string `envconfig:"REDIS_URL"`
	Host     string `envconfig:"REDIS_HOST" default:"redis"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Username string `envconfig:"REDIS_USERNAME" default:"test_user"`
	Password string `envconfig:"REDIS_PASSWORD" default:"test_password"`
}

// SeedConfig controls what is written and under which prefix
type SeedConfig struct {
	Namespace     string        `envconfig:"SEED_NAMESPACE" default:"ferrum_1"`
	SentinelRealm string        `envconfig:"SEED_SENTINEL_REALM" default:"myApp"`
	FixturesFile  string        `envconfig:"SEED_FIXTURES_FILE"`
	Timeout       time.Duration `envconfig:"SEED_TIMEOUT" default:"30s"`
	Verify        bool          `envconfig:"SEED_VERIFY" default:"false"`
}
