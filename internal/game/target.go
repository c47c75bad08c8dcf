package game

import (
	"math"

	"github.com/verte-zerg/wordshot/internal/model"
)

// currentTarget returns the enemy closest to the ship: the lowest one, with
// ties going to the one horizontally nearest the ship. Callers hold the
// lock.
func (s *Session) currentTarget() *model.Enemy {
	var target *model.Enemy
	for _, e := range s.enemies {
		if target == nil || e.Y > target.Y {
			target = e
			continue
		}
		if e.Y == target.Y && math.Abs(e.X-s.ship.X) < math.Abs(target.X-s.ship.X) {
			target = e
		}
	}
	return target
}

// CurrentTarget returns a copy of the current target and whether one exists.
func (s *Session) CurrentTarget() (model.Enemy, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := s.currentTarget()
	if target == nil {
		return model.Enemy{}, false
	}
	return *target, true
}

// ApplyLetter resolves one typed key against the current target. Anything
// other than a single letter, and any key outside a run, is ignored.
func (s *Session) ApplyLetter(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return
	}
	letter, ok := normalizeLetter(key)
	if !ok {
		return
	}
	target := s.currentTarget()
	if target == nil {
		return
	}
	remaining := target.Remaining()
	if remaining == "" {
		return
	}

	if letter != lowerByte(remaining[0]) {
		s.run.wrong++
		s.score -= wrongPenalty
		if s.score < 0 {
			s.score = 0
		}
		return
	}

	s.run.correct++
	target.Typed++
	cx, cy := target.Center()
	s.lasers = append(s.lasers, model.Laser{
		X1:  s.ship.X,
		Y1:  s.ship.Y - laserMuzzle,
		X2:  cx,
		Y2:  cy,
		TTL: laserTTL,
	})
	if s.sfx {
		s.audio.PlayHit()
	}
	if target.Remaining() != "" {
		return
	}
	if s.sfx {
		s.audio.PlayDestruction()
	}
	s.run.destroyed++
	s.score += wordReward
	s.removeEnemy(target)
}

func (s *Session) removeEnemy(target *model.Enemy) {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e != target {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = kept
}

func normalizeLetter(key string) (byte, bool) {
	if len(key) != 1 {
		return 0, false
	}
	ch := lowerByte(key[0])
	if ch < 'a' || ch > 'z' {
		return 0, false
	}
	return ch, true
}

func lowerByte(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}
