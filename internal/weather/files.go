package weather

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const fileExt = ".txt"

// ListFiles returns the weather files in dir sorted by name.
// A missing directory yields no files.
func ListFiles(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+fileExt))
	if err != nil {
		return nil, fmt.Errorf("failed to list weather files: %w", err)
	}
	return paths, nil
}

// MatchFiles returns the paths whose names encode the selector's period,
// keeping input order. Names look like Murree_weather_2004_Aug.txt.
func MatchFiles(paths []string, sel Selector) []string {
	var out []string
	for _, path := range paths {
		year, month, ok := periodFromName(filepath.Base(path))
		if !ok || year != sel.Year {
			continue
		}
		if sel.IsMonth() && month != sel.Month {
			continue
		}
		out = append(out, path)
	}
	return out
}

func periodFromName(name string) (year, month int, ok bool) {
	parts := strings.Split(strings.TrimSuffix(name, fileExt), "_")
	if len(parts) < 4 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, false
	}
	month, ok = MonthFromAbbrev(parts[3])
	if !ok {
		return 0, 0, false
	}
	return year, month, true
}

// MonthFromAbbrev maps Jan..Dec to 1..12.
func MonthFromAbbrev(abbrev string) (int, bool) {
	t, err := time.Parse("Jan", abbrev)
	if err != nil {
		return 0, false
	}
	return int(t.Month()), true
}

// MonthAbbrev maps 1..12 to Jan..Dec.
func MonthAbbrev(month int) string {
	if month < 1 || month > 12 {
		return "???"
	}
	return time.Month(month).String()[:3]
}
