// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Log     LogConfig     `toml:"log"`
	Weather WeatherConfig `toml:"weather"`
	Quiz    QuizConfig    `toml:"quiz"`
}

// LogConfig maps logging settings shared by both tools.
type LogConfig struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
}

// WeatherConfig maps weatherman settings.
type WeatherConfig struct {
	DateColumns []string `toml:"date-columns"`
	Color       *bool    `toml:"color"`
}

// QuizConfig maps typing quiz settings.
type QuizConfig struct {
	URL           *string  `toml:"url"`
	Host          *string  `toml:"host"`
	APIKey        *string  `toml:"api-key"`
	Timeout       *string  `toml:"timeout"`
	HoverTime     *float64 `toml:"hover-time"`
	KeystrokeTime *float64 `toml:"keystroke-time"`
	WordList      *string  `toml:"wordlist"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
