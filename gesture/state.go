package gesture

import (
	"time"

	"github.com/joshtol/emotive-engine/animators"
	"github.com/joshtol/emotive-engine/config"
	"github.com/joshtol/emotive-engine/easing"
)

// Status is the lifecycle state of one active gesture instance.
type Status int

const (
	// StatusActive gestures advance with time and contribute every tick.
	StatusActive Status = iota
	// StatusPaused gestures hold their progress while the coordinator is
	// globally paused.
	StatusPaused
	// StatusCompleting marks the tick on which a non-looping gesture
	// contributes its terminal frame at progress 1.
	StatusCompleting
	// StatusFinished gestures contribute nothing and are swept from the
	// active set on the next tick. No transition leaves this status.
	StatusFinished
)

// State is the mutable per-run record for one active gesture. Elapsed time
// is always derived from (now − start − pausedAccum), never accumulated,
// so pause/resume cannot drift.
type State struct {
	id  uint64
	def config.Definition

	compute animators.ComputeFunc
	params  animators.Params

	duration time.Duration
	curve    easing.Curve
	loop     bool

	start       time.Time
	pausedAccum time.Duration
	pausedSince time.Time
	status      Status
}

// Name returns the gesture name this state runs.
func (s *State) Name() string { return s.def.Name }

// Status returns the current lifecycle status.
func (s *State) Status() Status { return s.status }

// Loop reports whether progress wraps at 1.0.
func (s *State) Loop() bool { return s.loop }

func (s *State) elapsed(now time.Time) time.Duration {
	e := now.Sub(s.start) - s.pausedAccum
	if e < 0 {
		return 0
	}
	return e
}

// progress converts elapsed time to normalized progress: clamped to [0,1],
// or wrapped modulo 1.0 for looping gestures.
func (s *State) progress(now time.Time) float64 {
	ratio := float64(s.elapsed(now)) / float64(s.duration)
	if s.loop {
		return ratio - float64(int64(ratio))
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
