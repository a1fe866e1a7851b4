// Package gesture owns gesture lifecycle: starting, pausing, chaining and
// stopping runs, advancing them with frame time, and merging every active
// contribution into the one combined transform the renderer consumes.
package gesture

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/joshtol/emotive-engine/animators"
	"github.com/joshtol/emotive-engine/config"
	"github.com/joshtol/emotive-engine/easing"
	"github.com/joshtol/emotive-engine/transform"
)

// StartOptions overrides definition defaults for one run. Zero values mean
// "use the definition's default".
type StartOptions struct {
	Duration time.Duration
	Easing   easing.Curve
	// Loop overrides the definition's loop flag when non-nil.
	Loop *bool
	// Params merge key by key over the definition's defaults.
	Params map[string]float64
}

// Handle identifies one started gesture run.
type Handle struct {
	ID   uint64
	Name string
}

type resolved struct {
	def     config.Definition
	compute animators.ComputeFunc
}

type queued struct {
	name string
	opts *StartOptions
}

// Coordinator drives every active gesture for one mascot. It owns its
// active set outright, so independent coordinators never interfere. The
// public surface assumes a single writer per frame: it is built for a
// cooperative render loop, not concurrent mutation.
type Coordinator struct {
	registry *config.Registry
	resolved map[string]resolved

	clock   TimeProvider
	scale   float64
	onFault func(Fault)

	// active holds live states in activation order; the order matters for
	// last-writer-wins auxiliary keys.
	active []*State

	paused     bool
	pauseStart time.Time

	// chain is the queue of gestures to run back to back; chainHead is the
	// id of the chain entry currently playing (0 when none).
	chain     []queued
	chainHead uint64

	nextID uint64
}

// NewCoordinator builds a coordinator over a definition registry. Every
// definition is resolved against the animator dispatch table once, here, so
// a name that cannot be routed is a construction error rather than a
// per-frame surprise.
func NewCoordinator(reg *config.Registry) (*Coordinator, error) {
	c := &Coordinator{
		registry: reg,
		resolved: make(map[string]resolved, reg.Len()),
		clock:    systemTime{},
		scale:    1,
	}
	c.onFault = func(f Fault) { log.Printf("[gesture] %v", f) }

	for _, name := range reg.Names() {
		def, _ := reg.Lookup(name)
		category, fn, ok := animators.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("gesture: %q has no registered animator", name)
		}
		if category != def.Category {
			return nil, fmt.Errorf("gesture: %q declared category %q but animator is %q", name, def.Category, category)
		}
		c.resolved[name] = resolved{def: def, compute: fn}
	}
	return c, nil
}

// SetTimeProvider replaces the clock used by lifecycle calls. For tests.
func (c *Coordinator) SetTimeProvider(tp TimeProvider) {
	if tp != nil {
		c.clock = tp
	}
}

// SetScaleFactor updates the renderer's size hint. Offsets produced by Tick
// are multiplied by this factor; call it again on resize.
func (c *Coordinator) SetScaleFactor(f float64) {
	if f > 0 && !math.IsInf(f, 0) {
		c.scale = f
	}
}

// ScaleFactor returns the current size hint.
func (c *Coordinator) ScaleFactor() float64 { return c.scale }

// OnFault installs the observer invoked when a gesture is quarantined
// during Tick. The default observer logs.
func (c *Coordinator) OnFault(fn func(Fault)) {
	if fn != nil {
		c.onFault = fn
	}
}

// Start activates a gesture. Restarting an active name replaces the run,
// and any active gesture sharing the definition's exclusion group is
// cancelled before the new one begins. Returns ErrUnknownGesture or
// ErrInvalidParameter without touching the active set.
func (c *Coordinator) Start(name string, opts *StartOptions) (Handle, error) {
	return c.startAt(name, opts, c.clock.Now())
}

func (c *Coordinator) startAt(name string, opts *StartOptions, now time.Time) (Handle, error) {
	r, ok := c.resolved[name]
	if !ok {
		return Handle{}, fmt.Errorf("%w: %q", ErrUnknownGesture, name)
	}

	s, err := c.buildState(r, opts, now)
	if err != nil {
		return Handle{}, err
	}

	// Cancel-and-replace: same name first, then the exclusion group.
	c.removeWhere(func(old *State) bool { return old.def.Name == name })
	if group := r.def.ExclusionGroup; group != "" {
		c.removeWhere(func(old *State) bool { return old.def.ExclusionGroup == group })
	}

	c.active = append(c.active, s)
	return Handle{ID: s.id, Name: name}, nil
}

func (c *Coordinator) buildState(r resolved, opts *StartOptions, now time.Time) (*State, error) {
	def := r.def

	duration := def.Duration
	curve := def.Easing
	loop := def.Loop
	params := make(animators.Params, len(def.Params))
	for k, v := range def.Params {
		params[k] = v
	}

	if opts != nil {
		if opts.Duration != 0 {
			if opts.Duration < 0 {
				return nil, fmt.Errorf("%w: duration %v", ErrInvalidParameter, opts.Duration)
			}
			duration = opts.Duration
		}
		if opts.Easing != "" {
			if !easing.Known(opts.Easing) {
				return nil, fmt.Errorf("%w: easing %q", ErrInvalidParameter, opts.Easing)
			}
			curve = opts.Easing
		}
		if opts.Loop != nil {
			loop = *opts.Loop
		}
		for k, v := range opts.Params {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s is not finite", ErrInvalidParameter, k)
			}
			params[k] = v
		}
	}
	for _, k := range []string{"amplitude", "frequency", "bounces", "radius", "peak", "depth"} {
		if v, present := params[k]; present && v < 0 {
			return nil, fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidParameter, k, v)
		}
	}

	c.nextID++
	s := &State{
		id:       c.nextID,
		def:      def,
		compute:  r.compute,
		params:   params,
		duration: duration,
		curve:    curve,
		loop:     loop,
		start:    now,
		status:   StatusActive,
	}
	if c.paused {
		// Born frozen: it accrues pause credit from its own start, not
		// from the coordinator's pause epoch.
		s.status = StatusPaused
		s.pausedSince = now
	}
	return s, nil
}

// Chain queues a gesture to start when the previous chain entry finishes
// (immediately, on the next tick, when the chain is idle). The name is
// validated now so a typo surfaces at call time.
func (c *Coordinator) Chain(name string, opts *StartOptions) error {
	if _, ok := c.resolved[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGesture, name)
	}
	c.chain = append(c.chain, queued{name: name, opts: opts})
	return nil
}

// Tick advances every active gesture to now and returns the combined
// transform for this frame. The result is rebuilt from scratch each call;
// callers must not retain it. Tick never fails: faulting gestures are
// quarantined and reported through the fault observer.
func (c *Coordinator) Tick(now time.Time) transform.Transform {
	// Sweep runs that finished on the previous tick (their terminal frame
	// has been shown).
	c.removeWhere(func(s *State) bool { return s.status == StatusFinished })

	c.advanceChain(now)

	parts := make([]transform.Transform, 0, len(c.active))
	for _, s := range c.active {
		effNow := now
		if s.status == StatusPaused {
			effNow = s.pausedSince
		}

		progress := s.progress(effNow)
		terminal := !s.loop && s.elapsed(effNow) >= s.duration
		if terminal {
			progress = 1
			s.status = StatusCompleting
		}

		part, err := c.computePartial(s, easing.Apply(s.curve, progress))
		if err != nil {
			s.status = StatusFinished
			c.onFault(Fault{Gesture: s.def.Name, Progress: progress, Err: err})
			continue
		}
		parts = append(parts, part.ScaledOffsets(c.scale))

		if terminal {
			s.status = StatusFinished
		}
	}
	return transform.Combine(parts...)
}

// computePartial evaluates one animator defensively: a panic or a
// non-finite field becomes an error instead of escaping Tick.
func (c *Coordinator) computePartial(s *State, eased float64) (part transform.Transform, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("compute panic: %v", r)
		}
	}()
	part = s.compute(s.params, eased)
	if !finite(part) {
		return part, errors.New("non-finite transform value")
	}
	return part, nil
}

func finite(t transform.Transform) bool {
	for _, v := range []float64{t.OffsetX, t.OffsetY, t.Scale, t.Rotation, t.Glow} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	for _, v := range t.Effects {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// advanceChain starts the next queued gesture once the current chain head
// is gone from the active set.
func (c *Coordinator) advanceChain(now time.Time) {
	if len(c.chain) == 0 {
		return
	}
	if c.chainHead != 0 && c.findByID(c.chainHead) != nil {
		return
	}
	next := c.chain[0]
	c.chain = c.chain[1:]
	h, err := c.startAt(next.name, next.opts, now)
	if err != nil {
		// Validated at Chain time; only parameter overrides can fail here.
		c.onFault(Fault{Gesture: next.name, Err: err})
		c.chainHead = 0
		return
	}
	c.chainHead = h.ID
}

// Pause freezes elapsed-time accounting for every active gesture. Progress
// holds exactly where it is until Resume; Tick keeps returning the frozen
// frame.
func (c *Coordinator) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.clock.Now()
	for _, s := range c.active {
		if s.status == StatusActive {
			s.status = StatusPaused
			s.pausedSince = c.pauseStart
		}
	}
}

// Resume credits the paused span to every frozen gesture and lets time flow
// again. Progress continues exactly where it left off; nothing restarts.
func (c *Coordinator) Resume() {
	if !c.paused {
		return
	}
	now := c.clock.Now()
	for _, s := range c.active {
		if s.status == StatusPaused {
			s.pausedAccum += now.Sub(s.pausedSince)
			s.pausedSince = time.Time{}
			s.status = StatusActive
		}
	}
	c.paused = false
	c.pauseStart = time.Time{}
}

// Paused reports whether the coordinator is globally paused.
func (c *Coordinator) Paused() bool { return c.paused }

// Stop removes one named gesture immediately, with no terminal frame and
// no further ticks. Reports whether anything was removed.
func (c *Coordinator) Stop(name string) bool {
	return c.removeWhere(func(s *State) bool { return s.def.Name == name }) > 0
}

// Reset clears all active gestures, the chain queue and pause state,
// returning the coordinator to its initial empty state.
func (c *Coordinator) Reset() {
	c.active = nil
	c.chain = nil
	c.chainHead = 0
	c.paused = false
	c.pauseStart = time.Time{}
}

// removeWhere drops matching states from the active set, preserving
// activation order, and returns how many were removed. Removed states are
// marked finished so stale handles cannot resurrect them.
func (c *Coordinator) removeWhere(match func(*State) bool) int {
	kept := c.active[:0]
	removed := 0
	for _, s := range c.active {
		if match(s) {
			s.status = StatusFinished
			removed++
			continue
		}
		kept = append(kept, s)
	}
	c.active = kept
	return removed
}

func (c *Coordinator) findByID(id uint64) *State {
	for _, s := range c.active {
		if s.id == id {
			return s
		}
	}
	return nil
}

// ListAvailableGestures returns every registered gesture name in
// declaration order.
func (c *Coordinator) ListAvailableGestures() []string {
	return c.registry.Names()
}

// IsActive reports whether the named gesture is currently in the active
// set (in any status except swept).
func (c *Coordinator) IsActive(name string) bool {
	for _, s := range c.active {
		if s.def.Name == name && s.status != StatusFinished {
			return true
		}
	}
	return false
}

// ActiveCount returns the number of gestures in the active set.
func (c *Coordinator) ActiveCount() int { return len(c.active) }

// ActiveNames returns the names of active gestures in activation order.
func (c *Coordinator) ActiveNames() []string {
	out := make([]string, 0, len(c.active))
	for _, s := range c.active {
		if s.status != StatusFinished {
			out = append(out, s.def.Name)
		}
	}
	return out
}
