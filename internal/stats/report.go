package stats

import (
	"context"

	"github.com/verte-zerg/wordshot/internal/model"
	"github.com/verte-zerg/wordshot/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Runs []model.RunStats
	Best int
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	runs, err := st.ListRuns(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	best, err := st.LoadBest(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{Runs: runs, Best: best}, nil
}
