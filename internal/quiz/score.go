package quiz

import (
	"math"

	"github.com/verte-zerg/termkit/internal/model"
)

// Result is the scored outcome of a submitted session.
type Result struct {
	Word           model.WordRecord
	Typed          string
	Backspaces     int
	ElapsedSeconds float64
	Accuracy       float64
	Time           float64
	Total          float64
}

// AccuracyScore scores typed against actual on a 0..100 scale. Each matching
// position earns 100/len(actual); every character of length difference and
// every backspace costs the same amount.
func AccuracyScore(actual, typed string, backspaces int) float64 {
	want := []rune(actual)
	got := []rune(typed)
	if len(want) == 0 {
		return 0
	}
	perChar := 100 / float64(len(want))

	score := 0.0
	for i := 0; i < len(want) && i < len(got); i++ {
		if want[i] == got[i] {
			score += perChar
		}
	}
	gap := len(want) - len(got)
	if gap < 0 {
		gap = -gap
	}
	score -= float64(gap) * perChar
	score -= float64(backspaces) * perChar

	if score <= 0 {
		return 0
	}
	if score >= 100 {
		return 100
	}
	return round2(score)
}

// TimeScore scores typing speed on a 0..100 scale.
func TimeScore(actual string, elapsedSeconds float64, cal model.Calibration) float64 {
	length := float64(len([]rune(actual)))
	raw := elapsedSeconds/cal.AvgHoverTime + cal.AvgKeystrokeTime*length + 1
	score := 100.0
	if raw > 1 {
		score = 100 / raw
	}
	return round2(math.Max(0, score))
}

// TotalScore averages the accuracy and time scores.
func TotalScore(accuracy, timeScore float64) float64 {
	return round2((accuracy + timeScore) / 2)
}

// Evaluate scores a session against the word it was typing.
func Evaluate(word model.WordRecord, s *Session, cal model.Calibration) Result {
	elapsed := round2(s.Elapsed().Seconds())
	acc := AccuracyScore(word.Spelling, s.Text(), s.Backspaces())
	ts := TimeScore(word.Spelling, elapsed, cal)
	return Result{
		Word:           word,
		Typed:          s.Text(),
		Backspaces:     s.Backspaces(),
		ElapsedSeconds: elapsed,
		Accuracy:       acc,
		Time:           ts,
		Total:          TotalScore(acc, ts),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
