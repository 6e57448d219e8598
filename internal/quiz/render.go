package quiz

import (
	"fmt"
	"io"

	"github.com/verte-zerg/termkit/internal/textfmt"
)

const missingValue = "n/a"

// RenderResult prints the elapsed time, the three scores and the word details.
func RenderResult(w io.Writer, r Result) error {
	if _, err := fmt.Fprintf(w, "\nTime Taken by user: %.2fs\n\n", r.ElapsedSeconds); err != nil {
		return err
	}
	rows := [][]string{
		{"Accuracy Score", fmt.Sprintf("%.2f", r.Accuracy)},
		{"Time Score", fmt.Sprintf("%.2f", r.Time)},
		{"Total Score", fmt.Sprintf("%.2f", r.Total)},
	}
	for _, line := range textfmt.FormatTable(nil, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nDefinition: %s\n", orMissing(r.Word.Definition)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Pronunciation: %s\n", orMissing(r.Word.Pronunciation)); err != nil {
		return err
	}
	return nil
}

func orMissing(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}
