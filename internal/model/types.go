// Package model defines shared data structures.
package model

import (
	"database/sql"
	"time"
)

// WeatherRecord holds one day of readings from a weather file.
// A field with Valid == false had no value in the source row.
type WeatherRecord struct {
	Date         string
	MaxTemp      sql.NullInt64
	MinTemp      sql.NullInt64
	MaxHumidity  sql.NullInt64
	MeanHumidity sql.NullInt64
}

// WordRecord is a word to be retyped in the typing quiz.
type WordRecord struct {
	Spelling      string
	Definition    string
	Pronunciation string
}

// WeatherConfig defines parsing and rendering options for weather reports.
type WeatherConfig struct {
	DateColumns []string
	Color       bool
}

// QuizConfig defines typing quiz settings after flags, env and file are merged.
type QuizConfig struct {
	URL           string        `validate:"required,url"`
	Host          string        `validate:"required_without=WordListPath"`
	APIKey        string        `validate:"required_without=WordListPath"`
	Timeout       time.Duration `validate:"gte=0"`
	HoverTime     float64       `validate:"gt=0"`
	KeystrokeTime float64       `validate:"gte=0"`
	WordListPath  string
}

// Calibration holds the constants used by the time score.
type Calibration struct {
	AvgHoverTime     float64
	AvgKeystrokeTime float64
}

// Calibration returns the time score constants for the config.
func (c QuizConfig) Calibration() Calibration {
	return Calibration{AvgHoverTime: c.HoverTime, AvgKeystrokeTime: c.KeystrokeTime}
}
