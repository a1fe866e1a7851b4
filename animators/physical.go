package animators

import (
	"math"

	"github.com/joshtol/emotive-engine/transform"
)

func init() {
	mustRegister("bounce", Physical, Bounce)
	mustRegister("shake", Physical, Shake)
	mustRegister("jump", Physical, Jump)
	mustRegister("wobble", Physical, Wobble)
	mustRegister("pulse", Physical, Pulse)
}

// Bounce lifts the mascot through one or more decaying hops. The offset is
// non-negative, zero at both ends, and peaks inside the run. Params:
// amplitude (peak lift), bounces (hop count, each hop's peak shrinks by
// decay), decay, gravity (flag: asymmetric hop with a faster fall than rise).
func Bounce(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 30)
	bounces := int(p.Get("bounces", 1))
	if bounces < 1 {
		bounces = 1
	}
	decay := p.Get("decay", 0.5)

	// Which hop are we in, and how far through it.
	scaled := t * float64(bounces)
	hop := int(scaled)
	if hop >= bounces {
		hop = bounces - 1
	}
	s := scaled - float64(hop)

	var height float64
	if p.Flag("gravity") {
		// Spend 60% of the hop rising and 40% falling.
		const riseRatio = 0.6
		if s < riseRatio {
			height = math.Sin(math.Pi / 2 * s / riseRatio)
		} else {
			height = math.Cos(math.Pi / 2 * (s - riseRatio) / (1 - riseRatio))
		}
	} else {
		height = math.Sin(math.Pi * s)
	}

	out := transform.NewPartial()
	out.OffsetY = amp * math.Pow(decay, float64(hop)) * height
	return out
}

// Shake oscillates the mascot around its rest position with an amplitude
// that decays linearly to zero by the end of the run. Params: amplitude,
// frequency (full cycles over the run).
func Shake(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 12)
	freq := p.Get("frequency", 6)

	envelope := amp * (1 - t)
	out := transform.NewPartial()
	out.OffsetX = envelope * math.Sin(2*math.Pi*freq*t)
	// A weaker vertical component at a different rate keeps the shake from
	// reading as a pendulum.
	out.OffsetY = envelope * 0.3 * math.Sin(2*math.Pi*freq*1.3*t)
	return out
}

// Jump runs four phases: crouch squash, launch, peak/fall with stretch, and
// landing squash. Offset and scale are continuous across every phase
// boundary (offset 0 and scale 1 at each seam). Params: amplitude (flight
// height), crouchDepth, squash, stretch.
func Jump(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 50)
	crouch := p.Get("crouchDepth", 8)
	squash := p.Get("squash", 0.12)
	stretch := p.Get("stretch", 0.08)

	const (
		crouchEnd = 0.15
		flightEnd = 0.85
	)

	out := transform.NewPartial()
	switch {
	case t < crouchEnd:
		u := phase(t, 0, crouchEnd)
		out.OffsetY = -crouch * math.Sin(math.Pi*u)
		out.Scale = 1 - squash*math.Sin(math.Pi*u)
	case t < flightEnd:
		v := phase(t, crouchEnd, flightEnd)
		out.OffsetY = amp * math.Sin(math.Pi*v)
		// Stretch on the way up, relax toward the fall; the blend factor is
		// continuous in v so scale has no seam at the peak.
		blend := stretch * (1 - 0.5*smoothstep(phase(v, 0.4, 0.6)))
		out.Scale = 1 + blend*math.Sin(math.Pi*v)
	default:
		u := phase(t, flightEnd, 1)
		out.OffsetY = 0
		out.Scale = 1 - squash*math.Sin(math.Pi*u)
	}
	return out
}

// Wobble rocks the mascot's rotation back and forth, settling by the end.
// Params: amplitude (radians), frequency.
func Wobble(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 0.2)
	freq := p.Get("frequency", 3)

	out := transform.NewPartial()
	out.Rotation = amp * (1 - t) * math.Sin(2*math.Pi*freq*t)
	out.OffsetX = amp * 3 * (1 - t) * math.Sin(2*math.Pi*freq*t)
	return out
}

// Pulse swells scale through a single hump and adds a touch of glow at the
// crest. Params: amplitude (scale delta), glow.
func Pulse(p Params, t float64) transform.Transform {
	t = clampProgress(t)
	amp := p.Get("amplitude", 0.12)
	glow := p.Get("glow", 0.25)

	swell := math.Sin(math.Pi * t)
	out := transform.NewPartial()
	out.Scale = 1 + amp*swell
	out.Glow = glow * swell
	return out
}
