// Package config owns the gesture definition registry: the immutable
// name → {category, duration, easing, defaults, exclusion group, loop}
// mapping every coordinator is built from. Definitions are declared as Go
// data and can be re-tuned through a YAML overlay before the registry is
// handed to a coordinator.
package config

import (
	"fmt"
	"time"

	"github.com/joshtol/emotive-engine/animators"
	"github.com/joshtol/emotive-engine/easing"
)

// Definition describes one gesture. Immutable once its registry is built.
type Definition struct {
	Name     string
	Category animators.Category
	Duration time.Duration
	Easing   easing.Curve
	// Loop wraps progress at 1.0 back to 0 until the gesture is stopped.
	Loop bool
	// ExclusionGroup names a mutual-exclusion group; starting a gesture
	// cancels any active gesture in the same group. Empty means no group.
	ExclusionGroup string
	// Params are the default parameter values callers can override per run.
	Params map[string]float64
}

// Registry is the process-wide read-only set of gesture definitions.
// Lookups are by name; Names preserves declaration order so listings are
// stable.
type Registry struct {
	defs  map[string]Definition
	order []string
}

// NewRegistry validates and indexes a set of definitions: names must be
// unique and non-empty, durations positive, and easing curves known.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("config: definition with empty name")
		}
		if _, dup := r.defs[d.Name]; dup {
			return nil, fmt.Errorf("config: duplicate gesture %q", d.Name)
		}
		if d.Duration <= 0 {
			return nil, fmt.Errorf("config: gesture %q: duration must be positive, got %v", d.Name, d.Duration)
		}
		if !easing.Known(d.Easing) {
			return nil, fmt.Errorf("config: gesture %q: unknown easing curve %q", d.Name, d.Easing)
		}
		r.defs[d.Name] = d
		r.order = append(r.order, d.Name)
	}
	return r, nil
}

// Default returns a registry holding the built-in gesture set.
func Default() *Registry {
	r, err := NewRegistry(builtins)
	if err != nil {
		// The built-in table is compile-time data; a bad entry is a
		// programming error.
		panic(err)
	}
	return r
}

// Lookup returns the definition for name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Names returns all gesture names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.order)
}
