// Package model defines shared data structures.
package model

import "time"

// Config defines game settings.
type Config struct {
	Width         float64
	Height        float64
	MaxEnemies    int
	SpawnInterval int
	BaseSpeed     float64
	SurvivalBonus float64
	TickRate      int
	Seed          int64
	SFX           bool
	Music         bool
	Volume        float64
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
}

// Rect is an axis-aligned box in logical viewport units.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Ship is the stationary player ship. X and Y mark its nose.
type Ship struct {
	X float64
	Y float64
	W float64
	H float64
}

// Enemy is a descending word. Typed counts the letters already shot off the
// front of Text, so the remaining letters are always a suffix of Text.
type Enemy struct {
	Text     string
	Typed    int
	X        float64
	Y        float64
	W        float64
	H        float64
	FontSize int
	Speed    float64
}

// Remaining returns the letters still to be typed.
func (e *Enemy) Remaining() string {
	return e.Text[e.Typed:]
}

// Center returns the midpoint of the enemy box.
func (e *Enemy) Center() (float64, float64) {
	return e.X + e.W/2, e.Y + e.H/2
}

// Laser is a transient shot effect drawn for TTL ticks.
type Laser struct {
	X1  float64
	Y1  float64
	X2  float64
	Y2  float64
	TTL int
}

// RunStats captures a finished game run.
type RunStats struct {
	ID             string
	StartedAt      time.Time
	EndedAt        time.Time
	Score          int
	BestBefore     int
	WordsDestroyed int
	CorrectKeys    int
	WrongKeys      int
	Ticks          int64
	TickRate       int
}
