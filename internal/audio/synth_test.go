package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer, total int) []float64 {
	t.Helper()
	out := make([]float64, 0, total)
	buf := make([][2]float64, 512)
	for len(out) < total {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] != buf[i][1] {
				t.Fatalf("expected mono output at sample %d", len(out)+i)
			}
			out = append(out, buf[i][0])
		}
		if !ok {
			break
		}
	}
	return out
}

func peak(samples []float64) float64 {
	m := 0.0
	for _, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return math.Inf(1)
		}
		m = math.Max(m, math.Abs(s))
	}
	return m
}

func TestLaserEnvelope(t *testing.T) {
	samples := drain(t, beep.Take(sampleRate.N(laserDuration), newLaser(sampleRate)), sampleRate.N(time.Second))
	if len(samples) != sampleRate.N(laserDuration) {
		t.Fatalf("expected %d samples, got %d", sampleRate.N(laserDuration), len(samples))
	}
	if p := peak(samples); p > laserPeak+1e-9 || p < laserPeak/2 {
		t.Fatalf("unexpected laser peak %.4f", p)
	}
	tail := samples[sampleRate.N(260*time.Millisecond):]
	if p := peak(tail); p != 0 {
		t.Fatalf("expected silence after release, got %.6f", p)
	}
}

func TestExplosionDecays(t *testing.T) {
	samples := drain(t, beep.Take(sampleRate.N(explosionDuration), newExplosion(sampleRate, 7)), sampleRate.N(time.Second))
	head := peak(samples[:sampleRate.N(20*time.Millisecond)])
	tail := peak(samples[sampleRate.N(200*time.Millisecond):])
	if head > explosionGain+1e-9 {
		t.Fatalf("explosion louder than its gain: %.4f", head)
	}
	if tail >= head {
		t.Fatalf("expected decay, head %.4f tail %.4f", head, tail)
	}
}

func TestAmbienceFadesInAndStaysBounded(t *testing.T) {
	g := newAmbience(sampleRate)
	samples := drain(t, g, sampleRate.N(3*time.Second))
	start := peak(samples[:sampleRate.N(10*time.Millisecond)])
	later := peak(samples[sampleRate.N(2*time.Second):])
	if start >= later {
		t.Fatalf("expected fade in, start %.4f later %.4f", start, later)
	}
	if p := peak(samples); p > 2*(padLevel+lfoDepth) {
		t.Fatalf("ambience peak too high: %.4f", p)
	}
}

func TestManagerWithoutSpeakerIsSilent(t *testing.T) {
	m := NewManager(0.5)
	m.PlayHit()
	m.PlayDestruction()
	m.StartAmbience()
	m.StopAmbience()
	m.Close()
	if m.ambience != nil {
		t.Fatalf("expected no ambience before Initialize")
	}
}

func TestExpRamp(t *testing.T) {
	if got := expRamp(1, 100, 0.5); math.Abs(got-10) > 1e-9 {
		t.Fatalf("expected 10, got %.6f", got)
	}
	if expRamp(2, 8, -1) != 2 || expRamp(2, 8, 2) != 8 {
		t.Fatalf("expected ramp clamped to endpoints")
	}
}
