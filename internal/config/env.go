package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override the [quiz] section.
const (
	EnvAPIKey  = "RAPIDAPI_KEY"
	EnvAPIHost = "RAPIDAPI_HOST"
	EnvWordURL = "TERMKIT_WORD_URL"
)

// LoadEnv loads the given .env files into the process environment.
// Missing files are skipped and variables already set are kept.
func LoadEnv(paths ...string) error {
	existing := make([]string, 0, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to stat env file: %w", err)
		}
		existing = append(existing, path)
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
