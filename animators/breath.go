package animators

import (
	"math"

	"github.com/joshtol/emotive-engine/transform"
)

func init() {
	mustRegister("breathe", Breath, Breathe)
	mustRegister("breatheDeep", Breath, BreatheDeep)
	mustRegister("breatheQuick", Breath, BreatheQuick)
	mustRegister("sigh", Breath, Sigh)
}

// breathRatios reads the inhale/hold/exhale phase ratios and normalizes
// them to sum to 1, so a slightly off overlay still breathes sensibly.
func breathRatios(p Params) (inhale, hold, exhale float64) {
	inhale = p.Get("inhaleRatio", 0.4)
	hold = p.Get("holdRatio", 0.2)
	exhale = p.Get("exhaleRatio", 0.4)
	sum := inhale + hold + exhale
	if sum <= 0 {
		return 0.4, 0.2, 0.4
	}
	return inhale / sum, hold / sum, exhale / sum
}

// breatheCycle evaluates one inhale→hold→exhale cycle as a scale delta in
// [0, depth]. Scale is continuous across all three phase boundaries and
// returns to exactly 0 at progress 1, so looping runs are seamless.
func breatheCycle(p Params, t, depth float64) float64 {
	inhale, hold, _ := breathRatios(p)
	switch {
	case t < inhale:
		u := t / inhale
		return depth * 0.5 * (1 - math.Cos(math.Pi*u))
	case t < inhale+hold:
		return depth
	default:
		u := phase(t, inhale+hold, 1)
		return depth * 0.5 * (1 + math.Cos(math.Pi*u))
	}
}

// Breathe swells scale through an inhale/hold/exhale cycle. Params: depth
// (peak scale delta), inhaleRatio, holdRatio, exhaleRatio.
func Breathe(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	out := transform.NewPartial()
	out.Scale = 1 + breatheCycle(p, t, p.Get("depth", 0.08))
	return out
}

// BreatheDeep is Breathe with a larger default depth and a slight lift at
// full inhale, for calming/settling moments.
func BreatheDeep(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	depth := p.Get("depth", 0.16)
	cycle := breatheCycle(p, t, depth)

	out := transform.NewPartial()
	out.Scale = 1 + cycle
	out.OffsetY = p.Get("lift", 4) * cycle / depth
	return out
}

// BreatheQuick is a shallow, fast cycle for excited or anxious undertones.
func BreatheQuick(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	out := transform.NewPartial()
	out.Scale = 1 + breatheCycle(p, t, p.Get("depth", 0.05))
	return out
}

// Sigh takes one exaggerated inhale, then slumps: scale dips slightly below
// rest on the way out before recovering, and the mascot drops a touch during
// the exhale. All fields return to rest at progress 1. Params: depth, slump
// (undershoot below rest), drop (exhale offset).
func Sigh(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	depth := p.Get("depth", 0.14)
	slump := p.Get("slump", 0.03)
	drop := p.Get("drop", 6)

	const (
		inhaleEnd = 0.35
		slumpEnd  = 0.8
	)

	out := transform.NewPartial()
	switch {
	case t < inhaleEnd:
		u := phase(t, 0, inhaleEnd)
		out.Scale = 1 + depth*0.5*(1-math.Cos(math.Pi*u))
	case t < slumpEnd:
		u := phase(t, inhaleEnd, slumpEnd)
		// From +depth down through rest to -slump.
		out.Scale = 1 + depth - (depth+slump)*smoothstep(u)
		out.OffsetY = -drop * math.Sin(math.Pi*u)
	default:
		u := phase(t, slumpEnd, 1)
		out.Scale = 1 - slump*(1-smoothstep(u))
	}
	return out
}
