// Package wordbank provides the tiered enemy word lists.
package wordbank

import (
	"fmt"
	"math/rand"
)

// Score thresholds at which harder tiers join the pool.
const (
	MidThreshold  = 50
	HardThreshold = 200
)

var (
	defaultEasy = []string{"raum", "stern", "laser", "ziel", "wort", "schiff", "nebel", "planet", "energie", "radar"}
	defaultMid  = []string{"kosmos", "system", "angriff", "schutz", "daten", "meteor", "lernen", "korpus", "signal", "arbeiten"}
	defaultHard = []string{"galaxie", "sternbild", "explosion", "quantum", "invasion", "transmit", "resonanz", "Weltanschauung"}
)

// Bank holds the three word tiers.
type Bank struct {
	Easy []string
	Mid  []string
	Hard []string
}

// Default returns the built-in German word tiers.
func Default() *Bank {
	return &Bank{
		Easy: append([]string(nil), defaultEasy...),
		Mid:  append([]string(nil), defaultMid...),
		Hard: append([]string(nil), defaultHard...),
	}
}

// Load returns the default bank with any tier replaced by the words in the
// matching non-empty path.
func Load(easyPath, midPath, hardPath string) (*Bank, error) {
	bank := Default()
	tiers := []struct {
		name string
		path string
		dst  *[]string
	}{
		{"easy", easyPath, &bank.Easy},
		{"mid", midPath, &bank.Mid},
		{"hard", hardPath, &bank.Hard},
	}
	for _, tier := range tiers {
		if tier.path == "" {
			continue
		}
		words, err := LoadWords(tier.path, Typeable)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s words from %s: %w", tier.name, tier.path, err)
		}
		*tier.dst = words
	}
	return bank, nil
}

// Pool returns the words eligible at the given score.
func (b *Bank) Pool(score float64) []string {
	switch {
	case score < MidThreshold:
		return b.Easy
	case score < HardThreshold:
		pool := make([]string, 0, len(b.Easy)+len(b.Mid))
		pool = append(pool, b.Easy...)
		return append(pool, b.Mid...)
	default:
		pool := make([]string, 0, len(b.Easy)+len(b.Mid)+len(b.Hard))
		pool = append(pool, b.Easy...)
		pool = append(pool, b.Mid...)
		return append(pool, b.Hard...)
	}
}

// Select picks a word uniformly from the pool for score.
func (b *Bank) Select(rnd *rand.Rand, score float64) string {
	pool := b.Pool(score)
	return pool[rnd.Intn(len(pool))]
}
