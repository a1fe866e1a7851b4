package emotive

import (
	"time"

	"github.com/joshtol/emotive-engine/config"
	"github.com/joshtol/emotive-engine/gesture"
	"github.com/joshtol/emotive-engine/transform"
)

// Engine bundles a gesture registry and its coordinator behind one handle.
// Create one Engine per mascot; instances are fully independent.
type Engine struct {
	registry *config.Registry
	coord    *gesture.Coordinator
}

// Options configures engine construction. The zero value uses the built-in
// gesture set at scale factor 1.
type Options struct {
	// OverlayPath points at an optional YAML file re-tuning the built-in
	// gesture definitions.
	OverlayPath string
	// ScaleFactor is the renderer's size hint; gesture offsets scale with
	// it. Zero means 1.
	ScaleFactor float64
	// Registry replaces the built-in definition set entirely. OverlayPath
	// is ignored when set.
	Registry *config.Registry
}

// New builds an engine from the built-in gesture set plus options.
func New(opts Options) (*Engine, error) {
	reg := opts.Registry
	if reg == nil {
		if opts.OverlayPath != "" {
			var err error
			reg, err = config.DefaultWithOverlay(opts.OverlayPath)
			if err != nil {
				return nil, err
			}
		} else {
			reg = config.Default()
		}
	}

	coord, err := gesture.NewCoordinator(reg)
	if err != nil {
		return nil, err
	}
	if opts.ScaleFactor > 0 {
		coord.SetScaleFactor(opts.ScaleFactor)
	}
	return &Engine{registry: reg, coord: coord}, nil
}

// Start activates a gesture by name.
func (e *Engine) Start(name string, opts *gesture.StartOptions) (gesture.Handle, error) {
	return e.coord.Start(name, opts)
}

// Chain queues a gesture to run after the previous chain entry finishes.
func (e *Engine) Chain(name string, opts *gesture.StartOptions) error {
	return e.coord.Chain(name, opts)
}

// Tick advances the engine to now and returns this frame's combined
// transform. Call once per rendered frame.
func (e *Engine) Tick(now time.Time) transform.Transform {
	return e.coord.Tick(now)
}

// Pause freezes all gesture progress.
func (e *Engine) Pause() { e.coord.Pause() }

// Resume continues gesture progress from where Pause froze it.
func (e *Engine) Resume() { e.coord.Resume() }

// Stop removes one named gesture immediately.
func (e *Engine) Stop(name string) bool { return e.coord.Stop(name) }

// Reset clears all active gestures and chains.
func (e *Engine) Reset() { e.coord.Reset() }

// Gestures lists every available gesture name in declaration order.
func (e *Engine) Gestures() []string { return e.coord.ListAvailableGestures() }

// IsActive reports whether the named gesture is currently running.
func (e *Engine) IsActive(name string) bool { return e.coord.IsActive(name) }

// SetScaleFactor updates the renderer's size hint, e.g. on resize.
func (e *Engine) SetScaleFactor(f float64) { e.coord.SetScaleFactor(f) }

// OnFault installs the observer for quarantined gesture faults.
func (e *Engine) OnFault(fn func(gesture.Fault)) { e.coord.OnFault(fn) }

// Coordinator exposes the underlying coordinator for callers needing the
// full lifecycle surface.
func (e *Engine) Coordinator() *gesture.Coordinator { return e.coord }
