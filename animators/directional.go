package animators

import (
	"github.com/joshtol/emotive-engine/transform"
)

func init() {
	mustRegister("point", Directional, Point)
	mustRegister("reach", Directional, Reach)
	mustRegister("lean", Directional, Lean)
}

// moveHoldReturn is the shared three-phase envelope for directional
// gestures: smooth move out, hold at full extension, smooth return. The
// magnitude is 0 at progress 0 and 1 and exactly 1 during the hold.
func moveHoldReturn(p Params, t float64) float64 {
	moveEnd := p.Get("moveRatio", 0.3)
	holdEnd := moveEnd + p.Get("holdRatio", 0.4)
	if moveEnd <= 0 || holdEnd >= 1 || holdEnd <= moveEnd {
		moveEnd, holdEnd = 0.3, 0.7
	}
	switch {
	case t < moveEnd:
		return smoothstep(phase(t, 0, moveEnd))
	case t < holdEnd:
		return 1
	default:
		return 1 - smoothstep(phase(t, holdEnd, 1))
	}
}

// Point extends the mascot toward the dirX/dirY unit vector, holds, and
// returns, with a small lean into the pointing direction. Params: amplitude
// (extension distance), dirX, dirY, lean.
func Point(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 28)
	lean := p.Get("lean", 0.1)
	dx, dy := p.Direction()

	m := moveHoldReturn(p, t)
	out := transform.NewPartial()
	out.OffsetX = amp * dx * m
	out.OffsetY = amp * dy * m
	out.Rotation = lean * m * sign(dx)
	return out
}

// Reach is Point with a longer extension and a stretch at full reach.
// Params: amplitude, dirX, dirY, stretch.
func Reach(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 40)
	stretch := p.Get("stretch", 0.06)
	dx, dy := p.Direction()

	m := moveHoldReturn(p, t)
	out := transform.NewPartial()
	out.OffsetX = amp * dx * m
	out.OffsetY = amp * dy * m
	out.Scale = 1 + stretch*m
	return out
}

// Lean tips the mascot toward the direction without leaving its spot:
// rotation-dominant, with a small root shift. Params: amplitude (radians),
// dirX, dirY, shift.
func Lean(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 0.25)
	shift := p.Get("shift", 6)
	dx, _ := p.Direction()

	m := moveHoldReturn(p, t)
	out := transform.NewPartial()
	out.Rotation = amp * m * sign(dx)
	out.OffsetX = shift * dx * m
	return out
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
