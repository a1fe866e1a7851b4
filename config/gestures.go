package config

import (
	"time"

	"github.com/joshtol/emotive-engine/animators"
	"github.com/joshtol/emotive-engine/easing"
)

// builtins is the stock gesture set, grouped by category. Amplitude-style
// params are in logical pixels at scale factor 1; the coordinator scales
// offsets to the mascot's visual size.
var builtins = []Definition{
	// Physical
	{
		Name:           "bounce",
		Category:       animators.Physical,
		Duration:       1000 * time.Millisecond,
		Easing:         easing.EaseOut,
		Params:         map[string]float64{"amplitude": 30, "bounces": 1, "decay": 0.5},
		ExclusionGroup: "vertical",
	},
	{
		Name:     "shake",
		Category: animators.Physical,
		Duration: 600 * time.Millisecond,
		Easing:   easing.Linear,
		Params:   map[string]float64{"amplitude": 12, "frequency": 6},
	},
	{
		Name:           "jump",
		Category:       animators.Physical,
		Duration:       900 * time.Millisecond,
		Easing:         easing.Linear,
		Params:         map[string]float64{"amplitude": 50, "crouchDepth": 8, "squash": 0.12, "stretch": 0.08},
		ExclusionGroup: "vertical",
	},
	{
		Name:     "wobble",
		Category: animators.Physical,
		Duration: 800 * time.Millisecond,
		Easing:   easing.Linear,
		Params:   map[string]float64{"amplitude": 0.2, "frequency": 3},
	},
	{
		Name:     "pulse",
		Category: animators.Physical,
		Duration: 500 * time.Millisecond,
		Easing:   easing.EaseInOutSine,
		Params:   map[string]float64{"amplitude": 0.12, "glow": 0.25},
	},

	// VisualEffect
	{
		Name:     "flash",
		Category: animators.VisualEffect,
		Duration: 400 * time.Millisecond,
		Easing:   easing.Linear,
		Params:   map[string]float64{"peak": 1, "attack": 0.15},
	},
	{
		Name:     "glowPulse",
		Category: animators.VisualEffect,
		Duration: 1500 * time.Millisecond,
		Easing:   easing.Linear,
		Loop:     true,
		Params:   map[string]float64{"peak": 0.6},
	},
	{
		Name:     "flicker",
		Category: animators.VisualEffect,
		Duration: 700 * time.Millisecond,
		Easing:   easing.Linear,
		Params:   map[string]float64{"amplitude": 0.8, "frequency": 9},
	},
	{
		Name:     "shimmer",
		Category: animators.VisualEffect,
		Duration: 2000 * time.Millisecond,
		Easing:   easing.Linear,
		Loop:     true,
		Params:   map[string]float64{"peak": 0.4},
	},

	// Breath. One breathing pattern at a time.
	{
		Name:           "breathe",
		Category:       animators.Breath,
		Duration:       2000 * time.Millisecond,
		Easing:         easing.Linear,
		Loop:           true,
		Params:         map[string]float64{"depth": 0.08, "inhaleRatio": 0.4, "holdRatio": 0.2, "exhaleRatio": 0.4},
		ExclusionGroup: "breath",
	},
	{
		Name:           "breatheDeep",
		Category:       animators.Breath,
		Duration:       3600 * time.Millisecond,
		Easing:         easing.Linear,
		Loop:           true,
		Params:         map[string]float64{"depth": 0.16, "lift": 4, "inhaleRatio": 0.45, "holdRatio": 0.15, "exhaleRatio": 0.4},
		ExclusionGroup: "breath",
	},
	{
		Name:           "breatheQuick",
		Category:       animators.Breath,
		Duration:       900 * time.Millisecond,
		Easing:         easing.Linear,
		Loop:           true,
		Params:         map[string]float64{"depth": 0.05, "inhaleRatio": 0.45, "holdRatio": 0.1, "exhaleRatio": 0.45},
		ExclusionGroup: "breath",
	},
	{
		Name:           "sigh",
		Category:       animators.Breath,
		Duration:       1800 * time.Millisecond,
		Easing:         easing.Linear,
		Params:         map[string]float64{"depth": 0.14, "slump": 0.03, "drop": 6},
		ExclusionGroup: "breath",
	},

	// Movement. One locomotion path at a time.
	{
		Name:           "wave",
		Category:       animators.Movement,
		Duration:       1600 * time.Millisecond,
		Easing:         easing.EaseInOutSine,
		Params:         map[string]float64{"amplitude": 24, "flatten": 0.5},
		ExclusionGroup: "locomotion",
	},
	{
		Name:           "orbit",
		Category:       animators.Movement,
		Duration:       2000 * time.Millisecond,
		Easing:         easing.Linear,
		Loop:           true,
		Params:         map[string]float64{"radius": 20},
		ExclusionGroup: "locomotion",
	},
	{
		Name:           "sway",
		Category:       animators.Movement,
		Duration:       1400 * time.Millisecond,
		Easing:         easing.Linear,
		Loop:           true,
		Params:         map[string]float64{"amplitude": 16, "lean": 0.08},
		ExclusionGroup: "locomotion",
	},
	{
		Name:           "drift",
		Category:       animators.Movement,
		Duration:       2600 * time.Millisecond,
		Easing:         easing.Linear,
		Loop:           true,
		Params:         map[string]float64{"amplitude": 14},
		ExclusionGroup: "locomotion",
	},
	{
		Name:           "bob",
		Category:       animators.Movement,
		Duration:       1200 * time.Millisecond,
		Easing:         easing.Linear,
		Loop:           true,
		Params:         map[string]float64{"amplitude": 10, "cycles": 2},
		ExclusionGroup: "locomotion",
	},

	// ShapeTransform
	{
		Name:           "morph",
		Category:       animators.ShapeTransform,
		Duration:       1200 * time.Millisecond,
		Easing:         easing.Linear,
		Params:         map[string]float64{"amplitude": 0.15, "twist": 0.25},
		ExclusionGroup: "shape",
	},
	{
		Name:           "stretch",
		Category:       animators.ShapeTransform,
		Duration:       700 * time.Millisecond,
		Easing:         easing.EaseOutElastic,
		Params:         map[string]float64{"amplitude": 0.2},
		ExclusionGroup: "shape",
	},
	{
		Name:           "squish",
		Category:       animators.ShapeTransform,
		Duration:       600 * time.Millisecond,
		Easing:         easing.EaseOutBack,
		Params:         map[string]float64{"amplitude": 0.15},
		ExclusionGroup: "shape",
	},
	{
		Name:     "spin",
		Category: animators.ShapeTransform,
		Duration: 1000 * time.Millisecond,
		Easing:   easing.EaseInOut,
		Params:   map[string]float64{"turns": 1},
	},

	// Expression
	{
		Name:     "settle",
		Category: animators.Expression,
		Duration: 1100 * time.Millisecond,
		Easing:   easing.Linear,
		Params:   map[string]float64{"amplitude": 0.18, "damping": 4, "cycles": 3},
	},
	{
		Name:     "nod",
		Category: animators.Expression,
		Duration: 900 * time.Millisecond,
		Easing:   easing.Linear,
		Params:   map[string]float64{"amplitude": 8, "nods": 2},
	},
	{
		Name:     "tilt",
		Category: animators.Expression,
		Duration: 800 * time.Millisecond,
		Easing:   easing.EaseInOutSine,
		Params:   map[string]float64{"amplitude": 0.22, "shift": 4},
	},

	// Directional
	{
		Name:           "point",
		Category:       animators.Directional,
		Duration:       1200 * time.Millisecond,
		Easing:         easing.Linear,
		Params:         map[string]float64{"amplitude": 28, "dirX": 1, "dirY": 0, "lean": 0.1, "moveRatio": 0.3, "holdRatio": 0.4},
		ExclusionGroup: "posture",
	},
	{
		Name:           "reach",
		Category:       animators.Directional,
		Duration:       1400 * time.Millisecond,
		Easing:         easing.Linear,
		Params:         map[string]float64{"amplitude": 40, "dirX": 1, "dirY": 0.3, "stretch": 0.06, "moveRatio": 0.35, "holdRatio": 0.3},
		ExclusionGroup: "posture",
	},
	{
		Name:           "lean",
		Category:       animators.Directional,
		Duration:       1000 * time.Millisecond,
		Easing:         easing.EaseInOutSine,
		Params:         map[string]float64{"amplitude": 0.25, "dirX": 1, "dirY": 0, "shift": 6, "moveRatio": 0.3, "holdRatio": 0.4},
		ExclusionGroup: "posture",
	},

	// Complex. Full-body moves, one at a time.
	{
		Name:           "runningMan",
		Category:       animators.Complex,
		Duration:       1600 * time.Millisecond,
		Easing:         easing.Linear,
		Loop:           true,
		Params:         map[string]float64{"amplitude": 1, "cycles": 2},
		ExclusionGroup: "dance",
	},
	{
		Name:           "charleston",
		Category:       animators.Complex,
		Duration:       1800 * time.Millisecond,
		Easing:         easing.Linear,
		Loop:           true,
		Params:         map[string]float64{"amplitude": 1, "skew": 0.15},
		ExclusionGroup: "dance",
	},
	{
		Name:           "celebrate",
		Category:       animators.Complex,
		Duration:       1500 * time.Millisecond,
		Easing:         easing.Linear,
		Params:         map[string]float64{"amplitude": 1, "glow": 0.7},
		ExclusionGroup: "dance",
	},
}
