package animators

import (
	"testing"

	"github.com/joshtol/emotive-engine/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsGet(t *testing.T) {
	p := Params{"amplitude": 5}
	assert.Equal(t, 5.0, p.Get("amplitude", 1))
	assert.Equal(t, 7.0, p.Get("missing", 7))
	assert.Equal(t, 1.0, Params(nil).Get("anything", 1))
}

func TestParamsFlag(t *testing.T) {
	p := Params{"gravity": 1, "off": 0}
	assert.True(t, p.Flag("gravity"))
	assert.False(t, p.Flag("off"))
	assert.False(t, p.Flag("absent"))
}

func TestParamsDirection(t *testing.T) {
	x, y := Params{"dirX": 3, "dirY": 4}.Direction()
	assert.InDelta(t, 0.6, x, 1e-12)
	assert.InDelta(t, 0.8, y, 1e-12)

	// Degenerate vector falls back to pointing right.
	x, y = Params{"dirX": 0, "dirY": 0}.Direction()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)

	x, y = Params(nil).Direction()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	fn := func(Params, float64) transform.Transform { return transform.NewPartial() }
	require.NoError(t, Register("testDupGesture", Physical, fn))
	err := Register("testDupGesture", Physical, fn)
	require.Error(t, err)
}

func TestRegisterRejectsEmpty(t *testing.T) {
	require.Error(t, Register("", Physical, func(Params, float64) transform.Transform { return transform.NewPartial() }))
	require.Error(t, Register("testNilFn", Physical, nil))
}

func TestLookupBuiltins(t *testing.T) {
	category, fn, ok := Lookup("bounce")
	require.True(t, ok)
	assert.Equal(t, Physical, category)
	assert.NotNil(t, fn)

	_, _, ok = Lookup("noSuchGesture")
	assert.False(t, ok)
}

func TestComputeClampsOvershoot(t *testing.T) {
	// Elastic easing overshoots [0,1]; compute functions clamp internally.
	for _, fn := range []ComputeFunc{Bounce, Shake, Jump, Flash, Breathe, Wave, Morph, Settle, Point, RunningMan} {
		assert.Equal(t, fn(nil, 0), fn(nil, -0.25))
		assert.Equal(t, fn(nil, 1), fn(nil, 1.25))
	}
}

func TestComputeIsPure(t *testing.T) {
	p := Params{"amplitude": 17, "frequency": 4}
	for i := 0; i < 3; i++ {
		assert.Equal(t, Shake(p, 0.37), Shake(p, 0.37))
	}
	// Compute must not mutate its params.
	assert.Equal(t, Params{"amplitude": 17, "frequency": 4}, p)
}
