// Package game implements the gameplay state machine: spawning, targeting,
// letter resolution, the simulation tick and the run lifecycle.
package game

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/wordshot/internal/generator"
	"github.com/verte-zerg/wordshot/internal/model"
)

// State is the lifecycle state of a session.
type State int

const (
	StateMenu State = iota
	StateSettings
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateSettings:
		return "settings"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	wordReward      = 5
	wrongPenalty    = 5
	collisionMargin = 6
	laserTTL        = 10
	laserMuzzle     = 6
	shipOffset      = 70
	shipWidth       = 54
	shipHeight      = 28
	minSpawnTicks   = 30
	spawnScoreDiv   = 8
)

// Audio receives fire-and-forget sound cues.
type Audio interface {
	PlayHit()
	PlayDestruction()
	StartAmbience()
	StopAmbience()
}

// BestStore persists the best score.
type BestStore interface {
	LoadBest(ctx context.Context) (int, error)
	SaveBest(ctx context.Context, best int) error
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	InsertRun(ctx context.Context, run model.RunStats) error
}

// Options wires the collaborators of a session. Nil Audio and Recorder are
// allowed.
type Options struct {
	Config    model.Config
	Generator *generator.Generator
	Audio     Audio
	Store     BestStore
	Recorder  RunRecorder
}

// Session owns all mutable game state. Every exported method takes the
// session lock, so keystrokes and ticks from different goroutines are
// serialized.
type Session struct {
	mu sync.Mutex

	cfg      model.Config
	gen      *generator.Generator
	audio    Audio
	store    BestStore
	recorder RunRecorder

	state State
	score float64
	best  int
	ship  model.Ship

	enemies    []*model.Enemy
	lasers     []model.Laser
	spawnTimer int
	ticks      int64

	sfx   bool
	music bool

	run runCounters
}

type runCounters struct {
	id        string
	startedAt time.Time
	destroyed int
	correct   int
	wrong     int
}

// NewSession builds a session in the menu state and loads the best score.
// A failed load starts from zero.
func NewSession(opts Options) *Session {
	s := &Session{
		cfg:      opts.Config,
		gen:      opts.Generator,
		audio:    opts.Audio,
		store:    opts.Store,
		recorder: opts.Recorder,
		state:    StateMenu,
		sfx:      opts.Config.SFX,
		music:    opts.Config.Music,
	}
	if s.audio == nil {
		s.audio = nopAudio{}
	}
	s.ship = model.Ship{
		X: s.cfg.Width / 2,
		Y: s.cfg.Height - shipOffset,
		W: shipWidth,
		H: shipHeight,
	}
	if s.store != nil {
		best, err := s.store.LoadBest(context.Background())
		if err != nil {
			logErrf("failed to load best score: %v\n", err)
			best = 0
		}
		if best < 0 {
			best = 0
		}
		s.best = best
	}
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Score returns the current, unfloored score.
func (s *Session) Score() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Best returns the best finalized score.
func (s *Session) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

type nopAudio struct{}

func (nopAudio) PlayHit()         {}
func (nopAudio) PlayDestruction() {}
func (nopAudio) StartAmbience()   {}
func (nopAudio) StopAmbience()    {}

func newRunID() string {
	return uuid.New().String()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
