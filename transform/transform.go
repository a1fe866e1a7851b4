// Package transform defines the per-frame visual transform a gesture
// contributes and the algebra for merging many simultaneous contributions
// into one combined transform.
package transform

// Transform is the set of visual parameters one gesture contributes for a
// single frame. OffsetY is positive upward (a lift); the renderer maps it
// into its own coordinate system. Combined transforms are produced fresh
// every frame and must never be retained across frames.
type Transform struct {
	OffsetX  float64
	OffsetY  float64
	Scale    float64 // multiplicative, identity 1.0
	Rotation float64 // additive, radians
	Glow     float64 // take-max, identity 0

	// Effects carries auxiliary named values (skew, particleBurst, ...)
	// whose combination rule is declared by the animator that emits the
	// key. Unregistered keys combine last-writer-wins.
	Effects map[string]float64
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{Scale: 1}
}

// NewPartial returns an identity transform for an animator to fill in.
// Animators set only the fields they meaningfully affect.
func NewPartial() Transform {
	return Identity()
}

// WithEffect returns a copy of t carrying the auxiliary key. The receiver's
// map is not shared.
func (t Transform) WithEffect(key string, v float64) Transform {
	effects := make(map[string]float64, len(t.Effects)+1)
	for k, ev := range t.Effects {
		effects[k] = ev
	}
	effects[key] = v
	t.Effects = effects
	return t
}

// ScaledOffsets returns a copy of t with both offsets multiplied by factor.
// Used to normalize gesture amplitudes to the mascot's current visual size;
// scale, rotation and glow are size-independent and pass through untouched.
func (t Transform) ScaledOffsets(factor float64) Transform {
	t.OffsetX *= factor
	t.OffsetY *= factor
	return t
}

// CombineRule selects how an auxiliary effect key merges across gestures
// within one frame.
type CombineRule int

const (
	// LastWriter keeps the value from the most recently activated gesture.
	LastWriter CombineRule = iota
	// Sum adds contributions.
	Sum
	// Max keeps the largest contribution.
	Max
)

var effectRules = map[string]CombineRule{}

// RegisterEffectRule declares the combination rule for an auxiliary key.
// Animators call this at init for every key they emit. Re-registering a key
// overwrites its rule; keys never registered use LastWriter.
func RegisterEffectRule(key string, rule CombineRule) {
	effectRules[key] = rule
}

// EffectRule returns the combination rule for key.
func EffectRule(key string) CombineRule {
	if r, ok := effectRules[key]; ok {
		return r
	}
	return LastWriter
}

// Combine merges partial transforms in the order given: offsets and rotation
// sum, scale multiplies, glow takes the maximum, and auxiliary keys follow
// their registered rule. Order only matters for LastWriter keys, so callers
// pass partials in gesture activation order.
func Combine(parts ...Transform) Transform {
	out := Identity()
	for _, p := range parts {
		out.OffsetX += p.OffsetX
		out.OffsetY += p.OffsetY
		out.Scale *= p.Scale
		out.Rotation += p.Rotation
		if p.Glow > out.Glow {
			out.Glow = p.Glow
		}
		for key, v := range p.Effects {
			if out.Effects == nil {
				out.Effects = make(map[string]float64, len(p.Effects))
			}
			prev, seen := out.Effects[key]
			if !seen {
				out.Effects[key] = v
				continue
			}
			switch EffectRule(key) {
			case Sum:
				out.Effects[key] = prev + v
			case Max:
				if v > prev {
					out.Effects[key] = v
				}
			default:
				out.Effects[key] = v
			}
		}
	}
	return out
}
