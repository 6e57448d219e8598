// Package weather parses weather log files and aggregates their readings.
package weather

import "errors"

var (
	// ErrNoMatchingFiles is returned when no file matches a selector.
	ErrNoMatchingFiles = errors.New("no matching weather files")
	// ErrEmptyAggregationSet is returned when no record has the requested field.
	ErrEmptyAggregationSet = errors.New("no values to aggregate")
	// ErrInvalidArgument marks malformed selectors and directories.
	ErrInvalidArgument = errors.New("invalid argument")
)
