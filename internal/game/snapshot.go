package game

import (
	"math"

	"github.com/verte-zerg/wordshot/internal/model"
)

// Snapshot is a read-only copy of everything the renderer draws.
type Snapshot struct {
	State     State
	Width     float64
	Height    float64
	Ship      model.Ship
	Enemies   []model.Enemy
	Target    int
	Lasers    []model.Laser
	Score     int
	Best      int
	SFX       bool
	Music     bool
	Ticks     int64
	Destroyed int
}

// Snapshot copies the current state. Target is the index of the current
// target in Enemies, or -1.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		State:     s.state,
		Width:     s.cfg.Width,
		Height:    s.cfg.Height,
		Ship:      s.ship,
		Enemies:   make([]model.Enemy, len(s.enemies)),
		Target:    -1,
		Lasers:    append([]model.Laser(nil), s.lasers...),
		Score:     int(math.Floor(s.score)),
		Best:      s.best,
		SFX:       s.sfx,
		Music:     s.music,
		Ticks:     s.ticks,
		Destroyed: s.run.destroyed,
	}
	target := s.currentTarget()
	for i, e := range s.enemies {
		snap.Enemies[i] = *e
		if e == target {
			snap.Target = i
		}
	}
	return snap
}
