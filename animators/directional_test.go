package animators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveHoldReturnEnvelope(t *testing.T) {
	p := Params{"moveRatio": 0.3, "holdRatio": 0.4}
	assert.InDelta(t, 0, moveHoldReturn(p, 0), 1e-9)
	assert.InDelta(t, 0, moveHoldReturn(p, 1), 1e-9)
	// Full extension across the entire hold window.
	for _, progress := range []float64{0.3, 0.45, 0.6, 0.69} {
		require.InDeltaf(t, 1, moveHoldReturn(p, progress), 1e-9, "hold broken at %v", progress)
	}

	// Invalid phase ratios fall back to the stock 0.3/0.7 split.
	broken := Params{"moveRatio": 0.9, "holdRatio": 0.5}
	assert.InDelta(t, moveHoldReturn(nil, 0.5), moveHoldReturn(broken, 0.5), 1e-9)
}

func TestPointFollowsDirection(t *testing.T) {
	// A 3:4 direction normalizes to a unit vector before scaling.
	p := Params{"amplitude": 50, "dirX": 3, "dirY": 4, "lean": 0.1}
	hold := Point(p, 0.5)
	assert.InDelta(t, 30, hold.OffsetX, 1e-9)
	assert.InDelta(t, 40, hold.OffsetY, 1e-9)
	assert.InDelta(t, 0.1, hold.Rotation, 1e-9)

	for _, progress := range []float64{0, 1} {
		out := Point(p, progress)
		assert.InDelta(t, 0, out.OffsetX, 1e-9)
		assert.InDelta(t, 0, out.OffsetY, 1e-9)
	}
}

func TestPointLeansIntoDirection(t *testing.T) {
	left := Point(Params{"dirX": -1, "dirY": 0, "lean": 0.2}, 0.5)
	right := Point(Params{"dirX": 1, "dirY": 0, "lean": 0.2}, 0.5)
	assert.InDelta(t, -0.2, left.Rotation, 1e-9)
	assert.InDelta(t, 0.2, right.Rotation, 1e-9)
}

func TestReachStretchesAtFullExtension(t *testing.T) {
	p := Params{"amplitude": 40, "stretch": 0.06, "dirX": 0, "dirY": 1}
	hold := Reach(p, 0.5)
	assert.InDelta(t, 1.06, hold.Scale, 1e-9)
	assert.InDelta(t, 40, hold.OffsetY, 1e-9)
	assert.InDelta(t, 0, hold.OffsetX, 1e-9)

	assert.InDelta(t, 1, Reach(p, 0).Scale, 1e-9)
	assert.InDelta(t, 1, Reach(p, 1).Scale, 1e-9)
}

func TestLeanStaysPut(t *testing.T) {
	p := Params{"amplitude": 0.25, "shift": 6, "dirX": -1}
	hold := Lean(p, 0.5)
	assert.InDelta(t, -0.25, hold.Rotation, 1e-9)
	assert.InDelta(t, -6, hold.OffsetX, 1e-9)
	assert.InDelta(t, 0, hold.OffsetY, 1e-9)
}
