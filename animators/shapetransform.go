package animators

import (
	"math"

	"github.com/joshtol/emotive-engine/transform"
)

func init() {
	mustRegister("morph", ShapeTransform, Morph)
	mustRegister("stretch", ShapeTransform, Stretch)
	mustRegister("squish", ShapeTransform, Squish)
	mustRegister("spin", ShapeTransform, Spin)
}

// Morph oscillates scale and rotation off the same sine so the two stay
// phase-locked for the whole run. Rest at both ends; loop-safe. Params:
// amplitude (scale delta), twist (peak rotation in radians).
func Morph(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 0.15)
	twist := p.Get("twist", 0.25)

	s := math.Sin(2 * math.Pi * t)
	out := transform.NewPartial()
	out.Scale = 1 + amp*s
	out.Rotation = twist * s
	return out
}

// Stretch swells scale through a single hump and returns to rest. Params:
// amplitude.
func Stretch(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 0.2)

	out := transform.NewPartial()
	out.Scale = 1 + amp*math.Sin(math.Pi*t)
	return out
}

// Squish compresses scale through a single hump and returns to rest.
// Params: amplitude.
func Squish(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 0.15)

	out := transform.NewPartial()
	out.Scale = 1 - amp*math.Sin(math.Pi*t)
	return out
}

// Spin rotates through a whole number of revolutions, so the run ends on a
// visually identical angle (rotation at progress 1 is turns·2π, i.e. rest
// modulo a full turn) and looping wraps without a jump. Params: turns,
// clockwise (flag).
func Spin(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	turns := math.Round(p.Get("turns", 1))
	if turns < 1 {
		turns = 1
	}

	out := transform.NewPartial()
	out.Rotation = turns * 2 * math.Pi * t
	if p.Flag("clockwise") {
		out.Rotation = -out.Rotation
	}
	return out
}
