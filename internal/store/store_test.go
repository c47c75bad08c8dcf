package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/wordshot/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "wordshot.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestBestScoreRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	best, err := st.LoadBest(ctx)
	if err != nil {
		t.Fatalf("load empty best: %v", err)
	}
	if best != 0 {
		t.Fatalf("expected 0 on empty store, got %d", best)
	}
	if err := st.SaveBest(ctx, 42); err != nil {
		t.Fatalf("save best: %v", err)
	}
	if err := st.SaveBest(ctx, 57); err != nil {
		t.Fatalf("save best again: %v", err)
	}
	if best, err = st.LoadBest(ctx); err != nil || best != 57 {
		t.Fatalf("expected 57, got %d (%v)", best, err)
	}
	if err := st.SaveBest(ctx, -1); err == nil {
		t.Fatalf("expected negative best to be rejected")
	}
	if err := st.ResetBest(ctx); err != nil {
		t.Fatalf("reset best: %v", err)
	}
	if best, err = st.LoadBest(ctx); err != nil || best != 0 {
		t.Fatalf("expected 0 after reset, got %d (%v)", best, err)
	}
}

func TestListRunsFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 4; i++ {
		start := base.Add(time.Duration(i) * 24 * time.Hour)
		run := model.RunStats{
			ID:             uuid.New().String(),
			StartedAt:      start,
			EndedAt:        start.Add(90 * time.Second),
			Score:          10 * (i + 1),
			BestBefore:     10 * i,
			WordsDestroyed: 2 * (i + 1),
			CorrectKeys:    9 * (i + 1),
			WrongKeys:      i,
			Ticks:          5400,
			TickRate:       60,
		}
		if err := st.InsertRun(ctx, run); err != nil {
			t.Fatalf("insert run: %v", err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := st.ListRuns(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 4 || runs[0].ID != ids[0] || runs[3].Score != 40 {
		t.Fatalf("unexpected runs: %+v", runs)
	}
	if !runs[1].EndedAt.Equal(base.Add(24*time.Hour + 90*time.Second)) {
		t.Fatalf("unexpected ended_at %v", runs[1].EndedAt)
	}

	runs, err = st.ListRuns(ctx, model.StatsConfig{Last: 2})
	if err != nil {
		t.Fatalf("list last runs: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != ids[2] || runs[1].ID != ids[3] {
		t.Fatalf("unexpected last runs: %+v", runs)
	}

	since := base.Add(36 * time.Hour)
	runs, err = st.ListRuns(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list runs since: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs since %v, got %d", since, len(runs))
	}
}

func TestInsertRunRequiresID(t *testing.T) {
	st := openTestStore(t)
	if err := st.InsertRun(context.Background(), model.RunStats{}); err == nil {
		t.Fatalf("expected error for run without id")
	}
}
