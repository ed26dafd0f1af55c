package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	DataDir  string
	LogLevel string

	// SeedFile optionally points at a YAML catalog used by the seed
	// command instead of the built-in defaults.
	SeedFile string
}

func (c Config) IsProd() bool { return c.Env == "prod" }

// Load reads configuration from the environment, after applying an optional
// .env file. Variables already set in the environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadFromEnv(os.Getenv)
}

func LoadFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:      getenv("APP_ENV"),
		DataDir:  getenv("APP_DATA_DIR"),
		LogLevel: getenv("APP_LOG_LEVEL"),
		SeedFile: getenv("APP_SEED_FILE"),
	}

	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	switch cfg.Env {
	case "dev", "prod", "test":
	default:
		return Config{}, fmt.Errorf("APP_ENV: unknown environment %q", cfg.Env)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return Config{}, fmt.Errorf("APP_LOG_LEVEL: unknown level %q", cfg.LogLevel)
	}

	return cfg, nil
}
