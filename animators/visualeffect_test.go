package animators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashSinglePeak(t *testing.T) {
	p := Params{"peak": 1, "attack": 0.15}
	assert.InDelta(t, 0, Flash(p, 0).Glow, 1e-9)
	assert.InDelta(t, 0, Flash(p, 1).Glow, 1e-9)
	assert.InDelta(t, 1, Flash(p, 0.15).Glow, 1e-9)

	// Rising before the attack point, falling after.
	assert.Less(t, Flash(p, 0.05).Glow, Flash(p, 0.1).Glow)
	assert.Greater(t, Flash(p, 0.3).Glow, Flash(p, 0.7).Glow)
}

func TestFlashRejectsDegenerateAttack(t *testing.T) {
	// Out-of-range attack fractions fall back to the stock window.
	stock := Flash(Params{"peak": 1}, 0.4)
	for _, attack := range []float64{0, -1, 1, 2} {
		got := Flash(Params{"peak": 1, "attack": attack}, 0.4)
		require.InDelta(t, stock.Glow, got.Glow, 1e-9)
	}
}

func TestGlowPulseLoopsSeamlessly(t *testing.T) {
	p := Params{"peak": 0.6}
	assert.InDelta(t, GlowPulse(p, 0).Glow, GlowPulse(p, 1).Glow, 1e-9)
	assert.InDelta(t, 0.6, GlowPulse(p, 0.5).Glow, 1e-9)
	assert.InDelta(t, 0, GlowPulse(p, 0).Glow, 1e-9)
}

func TestFlickerEmitsIntensity(t *testing.T) {
	out := Flicker(nil, 0.37)
	level, ok := out.Effects[EffectFlickerIntensity]
	require.True(t, ok)
	assert.GreaterOrEqual(t, level, 0.0)
	assert.InDelta(t, level*0.5, out.Glow, 1e-9)

	// Deterministic: the same progress flickers identically.
	again := Flicker(nil, 0.37)
	assert.Equal(t, out.Glow, again.Glow)
	assert.Equal(t, level, again.Effects[EffectFlickerIntensity])
}

func TestFlickerDiesOut(t *testing.T) {
	p := Params{"amplitude": 0.8, "frequency": 9}
	assert.InDelta(t, 0, Flicker(p, 1).Glow, 1e-9)
	for _, progress := range []float64{0.2, 0.5, 0.8} {
		out := Flicker(p, progress)
		bound := 0.8 * (1 - progress)
		require.LessOrEqual(t, out.Effects[EffectFlickerIntensity], bound+1e-9)
	}
}

func TestShimmerPhaseSweepsOneTurn(t *testing.T) {
	start := Shimmer(nil, 0)
	end := Shimmer(nil, 1)
	assert.InDelta(t, start.Glow, end.Glow, 1e-9)
	assert.InDelta(t, 0, start.Effects[EffectShimmerPhase], 1e-9)
	assert.InDelta(t, 2*math.Pi, end.Effects[EffectShimmerPhase], 1e-9)
}
