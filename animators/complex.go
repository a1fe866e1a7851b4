package animators

import (
	"math"

	"github.com/joshtol/emotive-engine/transform"
)

// Auxiliary keys emitted by this category.
const (
	EffectSkew          = "skew"
	EffectParticleBurst = "particleBurst"
)

func init() {
	mustRegister("runningMan", Complex, RunningMan)
	mustRegister("charleston", Complex, Charleston)
	mustRegister("celebrate", Complex, Celebrate)

	transform.RegisterEffectRule(EffectSkew, transform.Sum)
	transform.RegisterEffectRule(EffectParticleBurst, transform.Max)
}

// The complex gestures are compositions: they evaluate two or more primitive
// animators at the same progress and merge the partials through the regular
// combination rules, which is what keeps the algebra closed under nesting.

// RunningMan layers a double bob under a sway, with an opposing lean so the
// body counter-rotates against the slide. Loop-safe. Params: amplitude
// (scales the whole move), cycles.
func RunningMan(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 1)
	cycles := math.Round(p.Get("cycles", 2))
	if cycles < 1 {
		cycles = 1
	}

	bob := Bob(Params{"amplitude": 8 * amp, "cycles": cycles}, t)
	sway := Sway(Params{"amplitude": 14 * amp, "lean": 0}, t)
	counter := transform.NewPartial()
	counter.Rotation = -0.06 * amp * math.Sin(2*math.Pi*t)

	return transform.Combine(bob, sway, counter)
}

// Charleston crosses a sway with alternating kicks: bob at double the sway
// rate, a rotation swing, and a skew auxiliary for renderers that can shear.
// Loop-safe. Params: amplitude, skew.
func Charleston(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 1)
	skewAmp := p.Get("skew", 0.15)

	sway := Sway(Params{"amplitude": 18 * amp, "lean": 0.05 * amp}, t)
	kicks := Bob(Params{"amplitude": 6 * amp, "cycles": 4}, t)
	swing := transform.NewPartial()
	swing.Rotation = 0.1 * amp * math.Sin(4*math.Pi*t)

	out := transform.Combine(sway, kicks, swing)
	return out.WithEffect(EffectSkew, skewAmp*math.Sin(2*math.Pi*t))
}

// Celebrate stacks a gravity bounce, a rotation wiggle, and a glow swell,
// and asks the renderer for a particle burst that peaks mid-gesture.
// Params: amplitude, glow.
func Celebrate(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 1)
	glow := p.Get("glow", 0.7)

	hops := Bounce(Params{"amplitude": 26 * amp, "bounces": 2, "gravity": 1}, t)
	wiggle := transform.NewPartial()
	wiggle.Rotation = 0.12 * amp * (1 - t) * math.Sin(4*math.Pi*t)
	shine := transform.NewPartial()
	shine.Glow = glow * math.Sin(math.Pi*t)

	out := transform.Combine(hops, wiggle, shine)
	return out.WithEffect(EffectParticleBurst, math.Sin(math.Pi*t))
}
