package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	laserFreq    = 1200.0
	laserPeak    = 0.08
	laserFloor   = 0.0001
	laserAttack  = 0.01
	laserRelease = 0.25

	explosionNoise = 250 * time.Millisecond
	explosionGain  = 0.6
	explosionEnd   = 0.001
	explosionTail  = 0.4

	padLowFreq   = 110.0
	padHighFreq  = 220.0
	padLowCents  = -10.0
	padHighCents = 9.0
	padLevel     = 0.06
	padFadeIn    = 1.0
	padCutoff    = 900.0
	lfoFreq      = 0.08
	lfoDepth     = 0.03
)

// expRamp interpolates exponentially from a to b as p goes from 0 to 1.
func expRamp(a, b, p float64) float64 {
	if p <= 0 {
		return a
	}
	if p >= 1 {
		return b
	}
	return a * math.Pow(b/a, p)
}

func detune(freq, cents float64) float64 {
	return freq * math.Pow(2, cents/1200)
}

// laser is a sawtooth zap with a fast attack and exponential release.
type laser struct {
	sr  beep.SampleRate
	pos int
}

func newLaser(sr beep.SampleRate) *laser {
	return &laser{sr: sr}
}

func (g *laser) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		var env float64
		switch {
		case t < laserAttack:
			env = expRamp(laserFloor, laserPeak, t/laserAttack)
		case t < laserRelease:
			env = expRamp(laserPeak, laserFloor, (t-laserAttack)/(laserRelease-laserAttack))
		default:
			env = 0
		}
		phase := math.Mod(t*laserFreq, 1)
		sample := env * (2*phase - 1)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *laser) Err() error {
	return nil
}

// explosion is a decaying noise burst.
type explosion struct {
	sr    beep.SampleRate
	pos   int
	seed  int64
	noise int
}

func newExplosion(sr beep.SampleRate, seed int64) *explosion {
	return &explosion{sr: sr, seed: seed, noise: sr.N(explosionNoise)}
}

func (g *explosion) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.0
		if g.pos < g.noise {
			g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
			white := float64(g.seed)/float64(0x7fffffff)*2 - 1
			sample = white * math.Exp(-3*float64(g.pos)/float64(g.noise))
		}
		sample *= expRamp(explosionGain, explosionEnd, t/explosionTail)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *explosion) Err() error {
	return nil
}

// ambience is a slowly pulsing two-oscillator pad.
type ambience struct {
	sr     beep.SampleRate
	pos    int
	f1     float64
	f2     float64
	alpha  float64
	filter float64
}

func newAmbience(sr beep.SampleRate) *ambience {
	dt := 1 / float64(sr)
	rc := 1 / (2 * math.Pi * padCutoff)
	return &ambience{
		sr:    sr,
		f1:    detune(padLowFreq, padLowCents),
		f2:    detune(padHighFreq, padHighCents),
		alpha: dt / (rc + dt),
	}
}

func (g *ambience) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		raw := math.Sin(2*math.Pi*g.f1*t) + math.Sin(2*math.Pi*g.f2*t)
		g.filter += g.alpha * (raw - g.filter)

		level := padLevel
		if t < padFadeIn {
			level = padLevel * t / padFadeIn
		}
		level += lfoDepth * math.Sin(2*math.Pi*lfoFreq*t)
		if level < 0 {
			level = 0
		}
		sample := level * g.filter
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ambience) Err() error {
	return nil
}
