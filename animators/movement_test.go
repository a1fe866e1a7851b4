package animators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every movement gesture must close its path: rest at progress 0 and 1 so a
// looping run has no seam at the wrap.
func TestMovementPathsClose(t *testing.T) {
	cases := []struct {
		name string
		fn   ComputeFunc
	}{
		{"wave", Wave},
		{"orbit", Orbit},
		{"sway", Sway},
		{"drift", Drift},
		{"bob", Bob},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := tc.fn(nil, 0)
			end := tc.fn(nil, 1)
			require.InDelta(t, 0, start.OffsetX, 1e-9)
			require.InDelta(t, 0, start.OffsetY, 1e-9)
			require.InDelta(t, start.OffsetX, end.OffsetX, 1e-9)
			require.InDelta(t, start.OffsetY, end.OffsetY, 1e-9)
			require.InDelta(t, start.Rotation, end.Rotation, 1e-9)
		})
	}
}

// The wrap boundary must also be smooth, not merely equal at the endpoints.
func TestMovementWrapContinuity(t *testing.T) {
	const eps = 1e-3
	for _, fn := range []ComputeFunc{Wave, Orbit, Sway, Drift, Bob} {
		before := fn(nil, 1-eps)
		after := fn(nil, eps)
		assert.InDelta(t, before.OffsetX, after.OffsetX, 1.0)
		assert.InDelta(t, before.OffsetY, after.OffsetY, 1.0)
	}
}

func TestWaveTracesFigureEight(t *testing.T) {
	p := Params{"amplitude": 24, "flatten": 0.5}
	// Horizontal extremes at quarter points, vertical crossing at the half.
	quarter := Wave(p, 0.25)
	assert.InDelta(t, 24, quarter.OffsetX, 1e-9)
	threeQ := Wave(p, 0.75)
	assert.InDelta(t, -24, threeQ.OffsetX, 1e-9)
	half := Wave(p, 0.5)
	assert.InDelta(t, 0, half.OffsetX, 1e-9)
	assert.InDelta(t, 0, half.OffsetY, 1e-9)
}

func TestOrbitStaysOnCircle(t *testing.T) {
	p := Params{"radius": 20}
	// Every sample sits on the circle of radius 20 centered one radius
	// above rest.
	for _, progress := range []float64{0.1, 0.25, 0.5, 0.8} {
		out := Orbit(p, progress)
		dist := math.Hypot(out.OffsetX, out.OffsetY-20)
		require.InDeltaf(t, 20, dist, 1e-9, "off circle at %v", progress)
	}
}

func TestOrbitClockwiseMirrors(t *testing.T) {
	ccw := Orbit(Params{"radius": 20}, 0.25)
	cw := Orbit(Params{"radius": 20, "clockwise": 1}, 0.25)
	assert.InDelta(t, -ccw.OffsetX, cw.OffsetX, 1e-12)
	assert.InDelta(t, ccw.OffsetY, cw.OffsetY, 1e-12)
}

func TestSwayLeanIsPhaseLocked(t *testing.T) {
	p := Params{"amplitude": 16, "lean": 0.08}
	for _, progress := range []float64{0.1, 0.3, 0.6, 0.9} {
		out := Sway(p, progress)
		// Offset and rotation ride the same sine.
		require.InDelta(t, out.OffsetX/16, out.Rotation/0.08, 1e-9)
	}
}

func TestBobNonNegativeLift(t *testing.T) {
	p := Params{"amplitude": 10, "cycles": 2}
	for i := 0; i <= 20; i++ {
		out := Bob(p, float64(i)/20)
		require.GreaterOrEqual(t, out.OffsetY, -1e-12)
		require.LessOrEqual(t, out.OffsetY, 10.0+1e-12)
	}
}
