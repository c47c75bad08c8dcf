// Package generator builds randomized enemies.
package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/verte-zerg/wordshot/internal/model"
	"github.com/verte-zerg/wordshot/internal/wordbank"
)

const (
	minEnemyWidth  = 80
	enemyHeight    = 30
	edgeInset      = 60
	baseFontSize   = 20
	fontSizeJitter = 8
	glyphRatio     = 0.6
	spawnDepth     = 40
	spawnDepthVar  = 160
	speedJitter    = 0.4
	maxScoreSpeed  = 1.6
	scoreSpeedDiv  = 250
)

// Generator produces randomized enemies.
type Generator struct {
	rnd  *rand.Rand
	bank *wordbank.Bank
}

// New returns a Generator seeded with seed, or with the current time when
// seed is zero.
func New(bank *wordbank.Bank, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed)), bank: bank}
}

// Enemy builds an enemy for the given score inside a viewport of the given
// width. Harder words and higher speeds unlock as the score grows.
func (g *Generator) Enemy(score, width, baseSpeed float64) *model.Enemy {
	word := g.bank.Select(g.rnd, score)
	fontSize := baseFontSize + g.rnd.Intn(fontSizeJitter)
	w := math.Max(minEnemyWidth, float64(len(word))*float64(fontSize)*glyphRatio)
	span := math.Max(0, width-2*edgeInset-w)
	return &model.Enemy{
		Text:     word,
		X:        edgeInset + g.rnd.Float64()*span,
		Y:        -spawnDepth - g.rnd.Float64()*spawnDepthVar,
		W:        w,
		H:        enemyHeight,
		FontSize: fontSize,
		Speed:    baseSpeed + g.rnd.Float64()*speedJitter + scoreSpeed(score),
	}
}

func scoreSpeed(score float64) float64 {
	if score <= 0 {
		return 0
	}
	return math.Min(maxScoreSpeed, score/scoreSpeedDiv)
}
