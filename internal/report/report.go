// Package report renders weather metrics as text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/termkit/internal/weather"
)

// RenderYearly prints the yearly extremes. A nil metrics prints the
// not-present message for the year.
func RenderYearly(w io.Writer, sel weather.Selector, m *weather.YearlyMetrics) error {
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if m == nil {
		_, err := fmt.Fprintf(w, "The files for the specified year: %s are not present.\n", sel)
		return err
	}
	lines := []string{
		fmt.Sprintf("Printing report for: %s", sel),
		fmt.Sprintf("Highest: %dC on %s", m.MaxTemp, monthDay(m.MaxTempDate)),
		fmt.Sprintf("Lowest : %dC on %s", m.MinTemp, monthDay(m.MinTempDate)),
		fmt.Sprintf("Humidity: %d%% on %s", m.MaxHumidity, monthDay(m.MaxHumidityDate)),
	}
	return writeLines(w, lines)
}

// RenderMonthly prints the monthly averages. A nil metrics prints the
// not-present message for the month.
func RenderMonthly(w io.Writer, sel weather.Selector, m *weather.MonthlyMetrics) error {
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if m == nil {
		return renderMonthMissing(w, sel)
	}
	lines := []string{
		fmt.Sprintf("Printing report for: %s", sel),
		fmt.Sprintf("Highest Average: %dC", m.AvgMaxTemp),
		fmt.Sprintf("Lowest Average: %dC", m.AvgMinTemp),
		fmt.Sprintf("Average Mean Humidity: %d%%", m.AvgMeanHumidity),
	}
	return writeLines(w, lines)
}

func renderMonthMissing(w io.Writer, sel weather.Selector) error {
	_, err := fmt.Fprintf(w, "The files for the specified month: %s are not present.\n", sel)
	return err
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// monthDay turns 2004-8-14 into "Aug 14". Unparseable dates print as "?".
func monthDay(date string) string {
	_, month, day, ok := splitDate(date)
	if !ok {
		return "?"
	}
	return weather.MonthAbbrev(month) + " " + day
}

func splitDate(date string) (year string, month int, day string, ok bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "", 0, "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, "", false
	}
	return parts[0], month, parts[2], true
}
