package animators

import (
	"math"

	"github.com/joshtol/emotive-engine/transform"
)

// Auxiliary keys emitted by this category.
const (
	EffectFlickerIntensity = "flickerIntensity"
	EffectShimmerPhase     = "shimmerPhase"
)

func init() {
	mustRegister("flash", VisualEffect, Flash)
	mustRegister("glowPulse", VisualEffect, GlowPulse)
	mustRegister("flicker", VisualEffect, Flicker)
	mustRegister("shimmer", VisualEffect, Shimmer)

	transform.RegisterEffectRule(EffectFlickerIntensity, transform.LastWriter)
	transform.RegisterEffectRule(EffectShimmerPhase, transform.LastWriter)
}

// Flash drives glow up sharply over the attack window and decays it back to
// baseline by the end of the run: a single peak, zero at both ends. Params:
// peak (glow ceiling), attack (fraction of the run spent rising).
func Flash(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	peak := p.Get("peak", 1)
	attack := p.Get("attack", 0.15)
	if attack <= 0 || attack >= 1 {
		attack = 0.15
	}

	out := transform.NewPartial()
	if t < attack {
		out.Glow = peak * (t / attack)
	} else {
		fall := 1 - phase(t, attack, 1)
		out.Glow = peak * fall * fall
	}
	return out
}

// GlowPulse cycles glow through a smooth cosine swell. The value at
// progress 1 equals the value at 0, so the gesture loops without a seam.
// Params: peak.
func GlowPulse(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	peak := p.Get("peak", 0.6)

	out := transform.NewPartial()
	out.Glow = peak * 0.5 * (1 - math.Cos(2*math.Pi*t))
	return out
}

// Flicker emits an unstable glow plus a flickerIntensity auxiliary value the
// renderer can feed into an effect pass. The jitter is a deterministic
// two-sine product, so identical inputs always flicker identically. Params:
// amplitude, frequency.
func Flicker(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 0.8)
	freq := p.Get("frequency", 9)

	jitter := math.Sin(2*math.Pi*freq*t) * math.Sin(2*math.Pi*freq*2.7*t)
	level := amp * (1 - t) * math.Abs(jitter)

	out := transform.NewPartial()
	out.Glow = level * 0.5
	return out.WithEffect(EffectFlickerIntensity, level)
}

// Shimmer sweeps a highlight phase across the mascot while glow breathes
// gently underneath. Loop-safe: glow matches at progress 0 and 1 and the
// phase completes exactly one turn. Params: peak.
func Shimmer(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	peak := p.Get("peak", 0.4)

	out := transform.NewPartial()
	out.Glow = peak * 0.5 * (1 - math.Cos(2*math.Pi*t))
	return out.WithEffect(EffectShimmerPhase, 2*math.Pi*t)
}
