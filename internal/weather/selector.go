package weather

import (
	"fmt"
	"os"
	"time"
)

// Selector picks a reporting period: a whole year, or one month when Month > 0.
type Selector struct {
	Year  int
	Month int
}

// ParseYearSelector parses a YYYY selector.
func ParseYearSelector(s string) (Selector, error) {
	t, err := time.Parse("2006", s)
	if err != nil {
		return Selector{}, fmt.Errorf("%w: given year (%s) not valid", ErrInvalidArgument, s)
	}
	return Selector{Year: t.Year()}, nil
}

// ParseMonthSelector parses a YYYY/MM selector. A single-digit month is accepted.
func ParseMonthSelector(s string) (Selector, error) {
	t, err := time.Parse("2006/1", s)
	if err != nil {
		return Selector{}, fmt.Errorf("%w: given month (%s) not valid", ErrInvalidArgument, s)
	}
	return Selector{Year: t.Year(), Month: int(t.Month())}, nil
}

// IsMonth reports whether the selector names a single month.
func (s Selector) IsMonth() bool {
	return s.Month > 0
}

func (s Selector) String() string {
	if s.IsMonth() {
		return fmt.Sprintf("%04d/%02d", s.Year, s.Month)
	}
	return fmt.Sprintf("%04d", s.Year)
}

// ValidateDir checks that path names an existing directory.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: directory %s is not a valid path", ErrInvalidArgument, path)
	}
	return nil
}
