package game

import (
	"context"
	"math"
	"time"

	"github.com/verte-zerg/wordshot/internal/model"
)

// Start begins a new run from the menu or the game-over screen. It reports
// whether the transition happened.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateMenu && s.state != StateGameOver {
		return false
	}
	s.resetRun()
	s.state = StatePlaying
	if s.music {
		s.audio.StartAmbience()
	}
	return true
}

// ReturnToMenu abandons the current run, leaves the game-over screen or
// closes the settings. An abandoned run is neither scored nor recorded.
func (s *Session) ReturnToMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StatePlaying, StateGameOver, StateSettings:
	default:
		return false
	}
	s.audio.StopAmbience()
	s.resetRun()
	s.state = StateMenu
	return true
}

// OpenSettings moves from the menu to the settings screen.
func (s *Session) OpenSettings() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateMenu {
		return false
	}
	s.state = StateSettings
	return true
}

// SetSFX enables or disables sound effects.
func (s *Session) SetSFX(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sfx = enabled
}

// SetMusic enables or disables the ambience. The change is audible at once
// during a run.
func (s *Session) SetMusic(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.music = enabled
	if !enabled {
		s.audio.StopAmbience()
		return
	}
	if s.state == StatePlaying {
		s.audio.StartAmbience()
	}
}

// SFX reports whether sound effects are enabled.
func (s *Session) SFX() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sfx
}

// Music reports whether the ambience is enabled.
func (s *Session) Music() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.music
}

func (s *Session) resetRun() {
	s.enemies = nil
	s.lasers = nil
	s.score = 0
	s.spawnTimer = 0
	s.ticks = 0
	s.run = runCounters{id: newRunID(), startedAt: time.Now()}
}

// endRun finalizes the run after a collision. Callers hold the lock.
func (s *Session) endRun() {
	s.state = StateGameOver
	final := int(math.Floor(s.score))
	bestBefore := s.best
	if final > s.best {
		s.best = final
		if s.store != nil {
			if err := s.store.SaveBest(context.Background(), final); err != nil {
				logErrf("failed to save best score: %v\n", err)
			}
		}
	}
	s.audio.StopAmbience()

	if s.recorder == nil {
		return
	}
	run := model.RunStats{
		ID:             s.run.id,
		StartedAt:      s.run.startedAt,
		EndedAt:        time.Now(),
		Score:          final,
		BestBefore:     bestBefore,
		WordsDestroyed: s.run.destroyed,
		CorrectKeys:    s.run.correct,
		WrongKeys:      s.run.wrong,
		Ticks:          s.ticks,
		TickRate:       s.cfg.TickRate,
	}
	if err := s.recorder.InsertRun(context.Background(), run); err != nil {
		logErrf("failed to save run: %v\n", err)
	}
}
