package game

import "time"

// maxCatchUpSteps bounds how many fixed steps one frame may run.
const maxCatchUpSteps = 5

// Tick advances the simulation by one fixed step. It does nothing outside a
// run. It reports whether the step ended the run.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick()
}

// Advance runs n fixed steps, stopping early if the run ends.
func (s *Session) Advance(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		if s.tick() {
			return
		}
	}
}

func (s *Session) tick() bool {
	if s.state != StatePlaying {
		return false
	}
	s.ticks++
	s.advanceSpawner()

	line := s.ship.Y - collisionMargin
	for _, e := range s.enemies {
		e.Y += e.Speed
		if e.Y+e.H >= line {
			s.endRun()
			return true
		}
	}

	kept := s.lasers[:0]
	for _, l := range s.lasers {
		l.TTL--
		if l.TTL > 0 {
			kept = append(kept, l)
		}
	}
	s.lasers = kept

	s.score += s.cfg.SurvivalBonus
	return false
}

// Stepper converts wall-clock frame intervals into fixed simulation steps,
// so scoring and movement do not depend on the render rate.
type Stepper struct {
	step  time.Duration
	acc   time.Duration
	last  time.Time
	limit int
}

// NewStepper returns a stepper running rate steps per second.
func NewStepper(rate int) *Stepper {
	if rate <= 0 {
		rate = 60
	}
	return &Stepper{step: time.Second / time.Duration(rate), limit: maxCatchUpSteps}
}

// Interval returns the duration of one fixed step.
func (st *Stepper) Interval() time.Duration {
	return st.step
}

// Reset drops any accumulated time, e.g. when a run starts.
func (st *Stepper) Reset(now time.Time) {
	st.acc = 0
	st.last = now
}

// Steps returns the number of whole steps elapsed since the previous call.
// Time beyond the catch-up limit is discarded.
func (st *Stepper) Steps(now time.Time) int {
	if st.last.IsZero() {
		st.last = now
		return 0
	}
	if now.After(st.last) {
		st.acc += now.Sub(st.last)
	}
	st.last = now
	n := int(st.acc / st.step)
	st.acc -= time.Duration(n) * st.step
	if n > st.limit {
		n = st.limit
		st.acc = 0
	}
	return n
}
