package weather

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/verte-zerg/termkit/internal/model"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)

// ParseOptions controls how weather files are read.
type ParseOptions struct {
	// DateColumns lists accepted names for the date column; the first one
	// found in a header is used.
	DateColumns []string
	Logger      *slog.Logger
}

func (o ParseOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// ColumnMap records where each required column sits in a file's rows.
// A column missing from the header has no entry.
type ColumnMap struct {
	date    int
	hasDate bool
	fields  map[Field]int
}

// NewColumnMap builds a ColumnMap from header cells.
func NewColumnMap(header []string, dateColumns []string) ColumnMap {
	cols := ColumnMap{fields: make(map[Field]int, len(numericFields))}
	byName := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := byName[name]; !ok {
			byName[name] = i
		}
	}
	for _, name := range dateColumns {
		if idx, ok := byName[name]; ok {
			cols.date = idx
			cols.hasDate = true
			break
		}
	}
	for _, f := range numericFields {
		if idx, ok := byName[f.Column()]; ok {
			cols.fields[f] = idx
		}
	}
	return cols
}

// Has reports whether the header contained the field's column.
func (c ColumnMap) Has(f Field) bool {
	_, ok := c.fields[f]
	return ok
}

// HasDate reports whether the header contained a date column.
func (c ColumnMap) HasDate() bool {
	return c.hasDate
}

// SplitLine splits a row on commas, tolerating one space after each comma.
func SplitLine(line string) []string {
	line = strings.TrimRight(line, "\r\n")
	cells := strings.Split(strings.ReplaceAll(line, ", ", ","), ",")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// ParseFile reads one weather file into records in line order.
func ParseFile(path string, opts ParseOptions) ([]model.WeatherRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weather file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	records, err := Parse(file, opts.logger().With("file", path), opts.DateColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// Parse reads a header line and the data rows that follow it.
func Parse(r io.Reader, logger *slog.Logger, dateColumns []string) ([]model.WeatherRecord, error) {
	scanner := bufio.NewScanner(r)
	var (
		cols      ColumnMap
		gotHeader bool
		records   []model.WeatherRecord
		lineNo    int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := SplitLine(line)
		if !gotHeader {
			cols = NewColumnMap(cells, dateColumns)
			gotHeader = true
			logMissingColumns(logger, cols)
			continue
		}
		rec, ok := parseRow(cells, cols, logger.With("line", lineNo))
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseRow(cells []string, cols ColumnMap, logger *slog.Logger) (model.WeatherRecord, bool) {
	var rec model.WeatherRecord
	if cols.hasDate {
		date := cell(cells, cols.date)
		if date != "" && !dateRe.MatchString(date) {
			logger.Debug("skipping row without a date", "value", date)
			return model.WeatherRecord{}, false
		}
		rec.Date = date
	}
	for _, f := range numericFields {
		idx, ok := cols.fields[f]
		if !ok {
			continue
		}
		f.set(&rec, parseReading(cell(cells, idx), f, logger))
	}
	return rec, true
}

func parseReading(raw string, f Field, logger *slog.Logger) sql.NullInt64 {
	if raw == "" {
		return sql.NullInt64{}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("ignoring non-integer reading", "column", f.Column(), "value", raw)
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: v, Valid: true}
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func logMissingColumns(logger *slog.Logger, cols ColumnMap) {
	if !cols.hasDate {
		logger.Debug("header has no date column")
	}
	for _, f := range numericFields {
		if !cols.Has(f) {
			logger.Debug("header is missing column", "column", f.Column())
		}
	}
}

// LoadRecords parses every file matching the selector, concatenated in path order.
func LoadRecords(paths []string, sel Selector, opts ParseOptions) ([]model.WeatherRecord, error) {
	matched := MatchFiles(paths, sel)
	logger := opts.logger()
	logger.Debug("matched weather files", "selector", sel.String(), "count", len(matched))
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoMatchingFiles, sel)
	}
	var records []model.WeatherRecord
	for _, path := range matched {
		recs, err := ParseFile(path, opts)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}
