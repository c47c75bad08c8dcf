// Package audio synthesizes the game's sound effects and ambience.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	laserDuration     = 300 * time.Millisecond
	explosionDuration = 400 * time.Millisecond
)

// Manager plays procedural sounds through the system speaker.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Gain
	ambience    *beep.Ctrl
	initialized bool
	seed        int64
}

// NewManager creates a manager with master volume in [0, 1].
func NewManager(volume float64) *Manager {
	mixer := &beep.Mixer{}
	return &Manager{
		mixer:  mixer,
		master: &effects.Gain{Streamer: mixer, Gain: volume - 1},
		seed:   time.Now().UnixNano(),
	}
}

// Initialize opens the speaker. It is safe to call more than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.master)
	m.initialized = true
	return nil
}

// Close silences everything.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	m.ambience = nil
	speaker.Unlock()
	m.initialized = false
}

// PlayHit plays the short laser zap.
func (m *Manager) PlayHit() {
	m.play(beep.Take(sampleRate.N(laserDuration), newLaser(sampleRate)))
}

// PlayDestruction plays the explosion burst.
func (m *Manager) PlayDestruction() {
	m.mu.Lock()
	m.seed++
	seed := m.seed
	m.mu.Unlock()
	m.play(beep.Take(sampleRate.N(explosionDuration), newExplosion(sampleRate, seed)))
}

// StartAmbience starts the background pad unless it is already playing.
func (m *Manager) StartAmbience() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.ambience != nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: newAmbience(sampleRate)}
	m.ambience = ctrl
	speaker.Lock()
	m.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopAmbience stops the background pad if it is playing.
func (m *Manager) StopAmbience() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ambience == nil {
		return
	}
	speaker.Lock()
	// A Ctrl without a streamer drains and is dropped by the mixer.
	m.ambience.Streamer = nil
	speaker.Unlock()
	m.ambience = nil
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Nop is a silent audio sink used when no speaker is available.
type Nop struct{}

func (Nop) PlayHit()         {}
func (Nop) PlayDestruction() {}
func (Nop) StartAmbience()   {}
func (Nop) StopAmbience()    {}
