package animators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorphPhaseLocked(t *testing.T) {
	p := Params{"amplitude": 0.15, "twist": 0.25}
	for _, progress := range []float64{0.1, 0.3, 0.55, 0.8} {
		out := Morph(p, progress)
		// Scale delta and rotation ride the same sine.
		require.InDeltaf(t, (out.Scale-1)/0.15, out.Rotation/0.25, 1e-9, "phase drift at %v", progress)
	}

	for _, progress := range []float64{0, 1} {
		out := Morph(p, progress)
		assert.InDelta(t, 1, out.Scale, 1e-9)
		assert.InDelta(t, 0, out.Rotation, 1e-9)
	}
}

func TestStretchAndSquishMirror(t *testing.T) {
	p := Params{"amplitude": 0.2}
	st := Stretch(p, 0.5)
	sq := Squish(p, 0.5)
	assert.InDelta(t, 1.2, st.Scale, 1e-9)
	assert.InDelta(t, 0.8, sq.Scale, 1e-9)

	for _, progress := range []float64{0, 1} {
		assert.InDelta(t, 1, Stretch(p, progress).Scale, 1e-9)
		assert.InDelta(t, 1, Squish(p, progress).Scale, 1e-9)
	}
}

func TestSpinWholeTurns(t *testing.T) {
	out := Spin(Params{"turns": 2}, 1)
	assert.InDelta(t, 4*math.Pi, out.Rotation, 1e-9)

	half := Spin(Params{"turns": 1}, 0.5)
	assert.InDelta(t, math.Pi, half.Rotation, 1e-9)

	// Fractional turn counts round so a looping spin cannot drift.
	partial := Spin(Params{"turns": 1.4}, 1)
	assert.InDelta(t, 2*math.Pi, partial.Rotation, 1e-9)
}

func TestSpinClockwise(t *testing.T) {
	cw := Spin(Params{"turns": 1, "clockwise": 1}, 0.25)
	assert.InDelta(t, -math.Pi/2, cw.Rotation, 1e-9)
}
