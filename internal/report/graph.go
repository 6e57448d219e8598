package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/termkit/internal/textfmt"
	"github.com/verte-zerg/termkit/internal/weather"
)

// GraphOptions controls the daily bar graph.
type GraphOptions struct {
	Color bool
}

// RenderGraph prints one bar per day: the min temperature in blue followed
// by the max temperature in red. A nil series prints the not-present message.
func RenderGraph(w io.Writer, sel weather.Selector, s *weather.Series, opts GraphOptions) error {
	if s == nil {
		if _, err := fmt.Fprintln(w, ""); err != nil {
			return err
		}
		return renderMonthMissing(w, sel)
	}
	if _, err := fmt.Fprintf(w, "Printing report for: %s\n", sel); err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		if _, err := fmt.Fprintln(w, GraphLine(s.Dates[i], s.MinTemps[i], s.MaxTemps[i], opts.Color)); err != nil {
			return err
		}
	}
	return nil
}

// GraphLine renders a single day of the graph.
func GraphLine(date string, minTemp, maxTemp int64, color bool) string {
	bar := textfmt.Paint(marks(minTemp), textfmt.ColorBlue, color) +
		textfmt.Paint(marks(maxTemp), textfmt.ColorRed, color)
	return fmt.Sprintf("%s %s %dC %dC", dayOfMonth(date), bar, minTemp, maxTemp)
}

func marks(v int64) string {
	if v < 0 {
		return strings.Repeat("-", int(-v))
	}
	return strings.Repeat("+", int(v))
}

func dayOfMonth(date string) string {
	_, _, day, ok := splitDate(date)
	if !ok {
		return "??"
	}
	if len(day) < 2 {
		day = "0" + day
	}
	return day
}
