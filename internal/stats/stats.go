// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/wordshot/internal/model"
)

const sparkChars = " .:-=+*#%@"

// RunMetrics computes survival time, destroyed words per minute and key
// accuracy for a run.
func RunMetrics(run model.RunStats) (seconds, wpm, accuracy float64) {
	if run.TickRate > 0 {
		seconds = float64(run.Ticks) / float64(run.TickRate)
	}
	if seconds > 0 {
		wpm = float64(run.WordsDestroyed) / (seconds / 60)
	}
	if total := run.CorrectKeys + run.WrongKeys; total > 0 {
		accuracy = float64(run.CorrectKeys) / float64(total)
	}
	return seconds, wpm, accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		den := float64(i + 1)
		if i >= window {
			sum -= values[i-window]
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Tail keeps the last n values, or all of them when n <= 0.
func Tail(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// ScoreSeries returns the run scores in order.
func ScoreSeries(runs []model.RunStats) []float64 {
	out := make([]float64, len(runs))
	for i, r := range runs {
		out[i] = float64(r.Score)
	}
	return out
}

// RenderSummary prints a summary for runs.
func RenderSummary(w io.Writer, runs []model.RunStats, best int) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintf(w, "No runs found.\nBest: %d\n", best)
		return err
	}
	var totalScore, totalSeconds, totalWPM, totalAcc float64
	words := 0
	for _, r := range runs {
		seconds, wpm, acc := RunMetrics(r)
		totalScore += float64(r.Score)
		totalSeconds += seconds
		totalWPM += wpm
		totalAcc += acc
		words += r.WordsDestroyed
	}
	count := float64(len(runs))
	lines := []string{
		"Summary",
		fmt.Sprintf("Runs: %d", len(runs)),
		fmt.Sprintf("Best: %d", best),
		fmt.Sprintf("Avg Score: %.1f", totalScore/count),
		fmt.Sprintf("Words Destroyed: %d", words),
		fmt.Sprintf("Avg Survival: %.1fs", totalSeconds/count),
		fmt.Sprintf("Avg Words/min: %.2f", totalWPM/count),
		fmt.Sprintf("Avg Accuracy: %.2f%%", (totalAcc/count)*100),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderScoreCurve prints a sparkline of the moving average score, trimmed
// to width columns.
func RenderScoreCurve(w io.Writer, runs []model.RunStats, window, width int) error {
	if len(runs) == 0 {
		return nil
	}
	series := Tail(MovingAverage(ScoreSeries(runs), window), width)
	minVal, maxVal := series[0], series[0]
	for _, v := range series {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if _, err := fmt.Fprintf(w, "Score (avg of %d)\n", max(window, 1)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Sparkline(series)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "min %.1f  max %.1f\n\n", minVal, maxVal)
	return err
}

// RenderRunTable prints one row per run, newest first.
func RenderRunTable(w io.Writer, runs []model.RunStats) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	headers, rows := RunRows(runs)
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RunRows formats runs as table cells, newest first.
func RunRows(runs []model.RunStats) ([]string, [][]string) {
	headers := []string{"Ended", "Score", "Words", "Time", "Words/min", "Accuracy"}
	rows := make([][]string, 0, len(runs))
	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		seconds, wpm, acc := RunMetrics(r)
		score := fmt.Sprintf("%d", r.Score)
		if r.Score > r.BestBefore {
			score += "*"
		}
		rows = append(rows, []string{
			r.EndedAt.Local().Format("2006-01-02 15:04"),
			score,
			fmt.Sprintf("%d", r.WordsDestroyed),
			fmt.Sprintf("%.1fs", seconds),
			fmt.Sprintf("%.2f", wpm),
			fmt.Sprintf("%.1f%%", acc*100),
		})
	}
	return headers, rows
}
