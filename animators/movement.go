package animators

import (
	"math"

	"github.com/joshtol/emotive-engine/transform"
)

func init() {
	mustRegister("wave", Movement, Wave)
	mustRegister("orbit", Movement, Orbit)
	mustRegister("sway", Movement, Sway)
	mustRegister("drift", Movement, Drift)
	mustRegister("bob", Movement, Bob)
}

// Wave traces a figure-eight: one horizontal cycle against two vertical
// cycles. The path passes through rest at progress 0 and 1, so looping runs
// close smoothly. Params: amplitude (horizontal reach), flatten (vertical
// reach as a fraction of amplitude).
func Wave(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 24)
	flatten := p.Get("flatten", 0.5)

	out := transform.NewPartial()
	out.OffsetX = amp * math.Sin(2*math.Pi*t)
	out.OffsetY = amp * flatten * math.Sin(4*math.Pi*t)
	return out
}

// Orbit moves the mascot around a full circle that is tangent to the rest
// position: offset is zero at progress 0 and 1 and the loop closes exactly.
// Params: radius, clockwise (flag).
func Orbit(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	radius := p.Get("radius", 20)
	angle := 2 * math.Pi * t

	out := transform.NewPartial()
	out.OffsetX = radius * math.Sin(angle)
	out.OffsetY = radius * (1 - math.Cos(angle))
	if p.Flag("clockwise") {
		out.OffsetX = -out.OffsetX
	}
	return out
}

// Sway rocks side to side with a matching lean so the motion reads as
// weight shifting, not sliding. One full cycle per run; loop-safe. Params:
// amplitude, lean (peak rotation in radians).
func Sway(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 16)
	lean := p.Get("lean", 0.08)

	s := math.Sin(2 * math.Pi * t)
	out := transform.NewPartial()
	out.OffsetX = amp * s
	out.Rotation = lean * s
	return out
}

// Drift wanders through a closed two-harmonic path, slower and looser than
// Wave. Returns to rest at both ends; loop-safe. Params: amplitude.
func Drift(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 14)

	out := transform.NewPartial()
	out.OffsetX = amp * math.Sin(2*math.Pi*t)
	out.OffsetY = amp * 0.6 * math.Sin(4*math.Pi*t) * math.Cos(2*math.Pi*t)
	return out
}

// Bob lifts the mascot through smooth vertical cycles, the locomotion
// primitive the complex dance gestures build on. Non-negative lift, zero at
// both ends, loop-safe. Params: amplitude, cycles.
func Bob(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 10)
	// Whole cycles only, otherwise a looping run would not close.
	cycles := math.Round(p.Get("cycles", 2))
	if cycles < 1 {
		cycles = 1
	}

	out := transform.NewPartial()
	out.OffsetY = amp * 0.5 * (1 - math.Cos(2*math.Pi*cycles*t))
	return out
}
