package animators

import (
	"math"

	"github.com/joshtol/emotive-engine/transform"
)

func init() {
	mustRegister("settle", Expression, Settle)
	mustRegister("nod", Expression, Nod)
	mustRegister("tilt", Expression, Tilt)
}

// Settle is a damped rotational sinusoid: amplitude · e^(−k·t) · sin(2π·f·t),
// the "come to rest" motion layered after head tilts and nods. The cycle
// count is rounded to a whole number so the output is exactly zero at
// progress 1 as well as 0. Params: amplitude (radians), damping (k),
// cycles (f).
func Settle(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 0.18)
	damping := p.Get("damping", 4)
	cycles := math.Round(p.Get("cycles", 3))
	if cycles < 1 {
		cycles = 1
	}

	out := transform.NewPartial()
	out.Rotation = amp * math.Exp(-damping*t) * math.Sin(2*math.Pi*cycles*t)
	return out
}

// Nod dips the mascot vertically a few times, tapered in and out so the
// motion starts and ends at rest. Params: amplitude, nods.
func Nod(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 8)
	nods := math.Round(p.Get("nods", 2))
	if nods < 1 {
		nods = 1
	}

	out := transform.NewPartial()
	out.OffsetY = -amp * math.Sin(math.Pi*t) * math.Abs(math.Sin(math.Pi*nods*t))
	return out
}

// Tilt leans the mascot to one side and back, with a slight sideways shift
// so the pivot reads as being below the body. Params: amplitude (radians),
// shift.
func Tilt(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 0.22)
	shift := p.Get("shift", 4)

	arc := math.Sin(math.Pi * t)
	out := transform.NewPartial()
	out.Rotation = amp * arc
	out.OffsetX = shift * arc
	return out
}
