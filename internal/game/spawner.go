package game

import "math"

// spawnThreshold is the number of ticks between spawn attempts at the
// current score, never below minSpawnTicks.
func (s *Session) spawnThreshold() int {
	interval := s.cfg.SpawnInterval - int(math.Floor(s.score/spawnScoreDiv))
	if interval < minSpawnTicks {
		return minSpawnTicks
	}
	return interval
}

// advanceSpawner counts one tick and attempts a spawn when the threshold is
// reached.
func (s *Session) advanceSpawner() {
	s.spawnTimer++
	if s.spawnTimer >= s.spawnThreshold() {
		s.trySpawn()
		s.spawnTimer = 0
	}
}

// trySpawn adds one enemy unless the live set is full.
func (s *Session) trySpawn() bool {
	if len(s.enemies) >= s.cfg.MaxEnemies {
		return false
	}
	s.enemies = append(s.enemies, s.gen.Enemy(s.score, s.cfg.Width, s.cfg.BaseSpeed))
	return true
}
