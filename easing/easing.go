// Package easing maps named curves onto eased progress values. Curves are
// resolved once through a fixed registry built on gween's easing functions,
// so evaluation is a pure table lookup plus one function call per frame.
package easing

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Curve identifies a named easing curve.
type Curve string

const (
	Linear Curve = "linear"

	// Quadratic family. These are the defaults most gestures reference.
	EaseIn    Curve = "easeIn"
	EaseOut   Curve = "easeOut"
	EaseInOut Curve = "easeInOut"

	EaseInCubic    Curve = "easeInCubic"
	EaseOutCubic   Curve = "easeOutCubic"
	EaseInOutCubic Curve = "easeInOutCubic"

	EaseInSine    Curve = "easeInSine"
	EaseOutSine   Curve = "easeOutSine"
	EaseInOutSine Curve = "easeInOutSine"

	// Back curves overshoot: output transiently leaves [0,1] near the
	// accelerated end before settling on the endpoint values.
	EaseInBack  Curve = "easeInBack"
	EaseOutBack Curve = "easeOutBack"

	// Elastic curves overshoot on both sides of the target while ringing
	// down. Endpoint values are still exact (0 at 0, 1 at 1).
	EaseInElastic  Curve = "easeInElastic"
	EaseOutElastic Curve = "easeOutElastic"

	EaseInBounce  Curve = "easeInBounce"
	EaseOutBounce Curve = "easeOutBounce"
)

var curves = map[Curve]ease.TweenFunc{
	Linear:         ease.Linear,
	EaseIn:         ease.InQuad,
	EaseOut:        ease.OutQuad,
	EaseInOut:      ease.InOutQuad,
	EaseInCubic:    ease.InCubic,
	EaseOutCubic:   ease.OutCubic,
	EaseInOutCubic: ease.InOutCubic,
	EaseInSine:     ease.InSine,
	EaseOutSine:    ease.OutSine,
	EaseInOutSine:  ease.InOutSine,
	EaseInBack:     ease.InBack,
	EaseOutBack:    ease.OutBack,
	EaseInElastic:  ease.InElastic,
	EaseOutElastic: ease.OutElastic,
	EaseInBounce:   ease.InBounce,
	EaseOutBounce:  ease.OutBounce,
}

// Apply remaps linear progress through the named curve. Input progress is
// clamped to [0,1]; output may exceed that range for the overshooting curves
// documented above. Unknown curves evaluate as Linear so a bad config value
// degrades to unshaped motion instead of panicking mid-frame.
func Apply(c Curve, progress float64) float64 {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	fn, ok := curves[c]
	if !ok {
		fn = ease.Linear
	}
	return float64(fn(float32(progress), 0, 1, 1))
}

// Known reports whether c resolves to a registered curve.
func Known(c Curve) bool {
	_, ok := curves[c]
	return ok
}

// Names returns all registered curve names, sorted.
func Names() []Curve {
	out := make([]Curve, 0, len(curves))
	for c := range curves {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
