package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/wordshot/internal/model"
	"github.com/verte-zerg/wordshot/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "wordshot.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		run := model.RunStats{
			ID:             uuid.New().String(),
			StartedAt:      start,
			EndedAt:        start.Add(30 * time.Second),
			Score:          20 + i,
			WordsDestroyed: 4,
			CorrectKeys:    20,
			WrongKeys:      1,
			Ticks:          1800,
			TickRate:       60,
		}
		if err := st.InsertRun(ctx, run); err != nil {
			t.Fatalf("insert run: %v", err)
		}
	}
	if err := st.SaveBest(ctx, 22); err != nil {
		t.Fatalf("save best: %v", err)
	}

	report, err := BuildReport(ctx, st, model.StatsConfig{Last: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Runs) != 2 || report.Runs[0].Score != 21 || report.Runs[1].Score != 22 {
		t.Fatalf("unexpected runs: %+v", report.Runs)
	}
	if report.Best != 22 {
		t.Fatalf("expected best 22, got %d", report.Best)
	}

	var buf bytes.Buffer
	if err := RenderSummary(&buf, report.Runs, report.Best); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Runs: 2", "Best: 22", "Avg Score: 21.5", "Words Destroyed: 8", "Avg Survival: 30.0s", "Avg Words/min: 8.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRunMetrics(t *testing.T) {
	seconds, wpm, acc := RunMetrics(model.RunStats{WordsDestroyed: 6, CorrectKeys: 30, WrongKeys: 10, Ticks: 3600, TickRate: 60})
	if seconds != 60 || wpm != 6 || acc != 0.75 {
		t.Fatalf("unexpected metrics: %.2f %.2f %.2f", seconds, wpm, acc)
	}
	seconds, wpm, acc = RunMetrics(model.RunStats{})
	if seconds != 0 || wpm != 0 || acc != 0 {
		t.Fatalf("expected zero metrics for empty run")
	}
}

func TestMovingAverageAndSparkline(t *testing.T) {
	avg := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if avg[i] != want[i] {
			t.Fatalf("index %d: expected %.1f, got %.1f", i, want[i], avg[i])
		}
	}
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if got := Tail([]float64{1, 2, 3}, 2); len(got) != 2 || got[0] != 2 {
		t.Fatalf("unexpected tail %v", got)
	}
}

func TestRunRowsNewestFirstAndMarksRecords(t *testing.T) {
	runs := []model.RunStats{
		{Score: 10, BestBefore: 0, EndedAt: time.Unix(0, 0)},
		{Score: 5, BestBefore: 10, EndedAt: time.Unix(60, 0)},
	}
	_, rows := RunRows(runs)
	if rows[0][1] != "5" || rows[1][1] != "10*" {
		t.Fatalf("unexpected rows %v", rows)
	}
}
