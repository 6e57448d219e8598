package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/termkit/internal/model"
)

// Defaults for settings that may be omitted everywhere.
const (
	DefaultWordURL       = "https://random-words-with-pronunciation.p.rapidapi.com/word"
	DefaultWordHost      = "random-words-with-pronunciation.p.rapidapi.com"
	DefaultHoverTime     = 2.0
	DefaultKeystrokeTime = 0.05
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
)

// DefaultDateColumns lists the accepted names of the date column.
var DefaultDateColumns = []string{"PKT", "PKST"}

var validate = validator.New()

// ResolveWeather merges file settings over defaults.
func ResolveWeather(fc FileConfig) model.WeatherConfig {
	cfg := model.WeatherConfig{
		DateColumns: append([]string(nil), DefaultDateColumns...),
		Color:       true,
	}
	if cols := trimAll(fc.Weather.DateColumns); len(cols) > 0 {
		cfg.DateColumns = cols
	}
	if fc.Weather.Color != nil {
		cfg.Color = *fc.Weather.Color
	}
	return cfg
}

// ResolveQuiz merges file settings and then environment over defaults.
func ResolveQuiz(fc FileConfig) (model.QuizConfig, error) {
	cfg := model.QuizConfig{
		URL:           DefaultWordURL,
		Host:          DefaultWordHost,
		HoverTime:     DefaultHoverTime,
		KeystrokeTime: DefaultKeystrokeTime,
	}
	q := fc.Quiz
	if q.URL != nil {
		cfg.URL = *q.URL
	}
	if q.Host != nil {
		cfg.Host = *q.Host
	}
	if q.APIKey != nil {
		cfg.APIKey = *q.APIKey
	}
	if q.HoverTime != nil {
		cfg.HoverTime = *q.HoverTime
	}
	if q.KeystrokeTime != nil {
		cfg.KeystrokeTime = *q.KeystrokeTime
	}
	if q.WordList != nil {
		cfg.WordListPath = *q.WordList
	}
	if q.Timeout != nil && *q.Timeout != "" {
		d, err := time.ParseDuration(*q.Timeout)
		if err != nil {
			return model.QuizConfig{}, fmt.Errorf("invalid quiz.timeout: %w", err)
		}
		cfg.Timeout = d
	}
	envOverride(&cfg.URL, EnvWordURL)
	envOverride(&cfg.Host, EnvAPIHost)
	envOverride(&cfg.APIKey, EnvAPIKey)
	return cfg, nil
}

// ResolveLog returns the log level and format from the file, or defaults.
func ResolveLog(fc FileConfig) (level, format string) {
	level, format = DefaultLogLevel, DefaultLogFormat
	if fc.Log.Level != nil && *fc.Log.Level != "" {
		level = *fc.Log.Level
	}
	if fc.Log.Format != nil && *fc.Log.Format != "" {
		format = *fc.Log.Format
	}
	return level, format
}

// ValidateQuiz checks a fully merged quiz config.
func ValidateQuiz(cfg model.QuizConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describeField(fe))
			}
			return fmt.Errorf("invalid quiz config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid quiz config: %w", err)
	}
	return nil
}

func describeField(fe validator.FieldError) string {
	switch fe.Field() {
	case "URL":
		return "quiz.url must be a valid URL"
	case "Host":
		return fmt.Sprintf("quiz.host (or %s) is required", EnvAPIHost)
	case "APIKey":
		return fmt.Sprintf("quiz.api-key (or %s) is required", EnvAPIKey)
	case "Timeout":
		return "quiz.timeout must be >= 0"
	case "HoverTime":
		return "quiz.hover-time must be > 0"
	case "KeystrokeTime":
		return "quiz.keystroke-time must be >= 0"
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
