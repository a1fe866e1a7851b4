package animators_test

import (
	"math"
	"testing"

	"github.com/joshtol/emotive-engine/animators"
	"github.com/joshtol/emotive-engine/config"
	"github.com/stretchr/testify/require"
)

// Every built-in gesture starts and ends at rest with its default parameters:
// no offset, unit scale, no glow, and a rotation that is a whole number of
// turns. This is what lets a finished gesture hand a clean frame back to the
// combiner.
func TestBuiltinsRestAtEndpoints(t *testing.T) {
	reg := config.Default()
	for _, name := range reg.Names() {
		def, ok := reg.Lookup(name)
		require.True(t, ok)
		_, compute, ok := animators.Lookup(name)
		require.Truef(t, ok, "no animator for %q", name)

		params := animators.Params(def.Params)
		for _, progress := range []float64{0, 1} {
			out := compute(params, progress)
			require.InDeltaf(t, 0, out.OffsetX, 1e-6, "%s offsetX at %v", name, progress)
			require.InDeltaf(t, 0, out.OffsetY, 1e-6, "%s offsetY at %v", name, progress)
			require.InDeltaf(t, 1, out.Scale, 1e-6, "%s scale at %v", name, progress)
			require.InDeltaf(t, 0, out.Glow, 1e-6, "%s glow at %v", name, progress)
			requireWholeTurns(t, name, progress, out.Rotation)
		}
	}
}

// requireWholeTurns accepts any rotation that is an integer multiple of 2π,
// which covers both resting gestures and full revolutions such as spin.
func requireWholeTurns(t *testing.T, name string, progress, rotation float64) {
	t.Helper()
	r := math.Abs(math.Mod(rotation, 2*math.Pi))
	if r > math.Pi {
		r = 2*math.Pi - r
	}
	require.LessOrEqualf(t, r, 1e-6, "%s rotation %v at %v is not a whole turn", name, rotation, progress)
}
