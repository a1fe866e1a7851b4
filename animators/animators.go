// Package animators holds the stateless compute functions for every gesture
// category. Each function is pure over (params, progress): it reads its
// parameters, evaluates closed-form motion math at the given progress, and
// returns a partial transform touching only the fields it affects. All
// lifecycle and timing state lives in the coordinator, never here.
package animators

import "math"

// Category tags the thematic group a gesture belongs to.
type Category string

const (
	Physical       Category = "physical"
	VisualEffect   Category = "visualEffect"
	Breath         Category = "breath"
	Movement       Category = "movement"
	ShapeTransform Category = "shapeTransform"
	Expression     Category = "expression"
	Directional    Category = "directional"
	Complex        Category = "complex"
)

// Params is the merged parameter set for one gesture run: definition
// defaults overlaid with caller overrides. Compute functions read it,
// never write it.
type Params map[string]float64

// Get returns the named parameter or fallback when absent.
func (p Params) Get(key string, fallback float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return fallback
}

// Flag treats the named parameter as a boolean (>= 0.5 is true).
func (p Params) Flag(key string) bool {
	return p.Get(key, 0) >= 0.5
}

// Direction returns the dirX/dirY parameters normalized to a unit vector.
// Defaults to pointing right when unset or degenerate.
func (p Params) Direction() (x, y float64) {
	x = p.Get("dirX", 1)
	y = p.Get("dirY", 0)
	mag := math.Hypot(x, y)
	if mag < 1e-9 {
		return 1, 0
	}
	return x / mag, y / mag
}

// clampProgress bounds progress to [0,1]. Elastic and back easing curves
// overshoot, so every compute function clamps before evaluating.
func clampProgress(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// phase returns the position of t within [lo,hi) rescaled to [0,1].
func phase(t, lo, hi float64) float64 {
	return (t - lo) / (hi - lo)
}

// smoothstep is the cubic ease 3u²-2u³ on [0,1], used where a phase needs
// zero-velocity entry and exit.
func smoothstep(u float64) float64 {
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u * u * (3 - 2*u)
}
