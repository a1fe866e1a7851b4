package animators

import (
	"fmt"
	"sort"

	"github.com/joshtol/emotive-engine/transform"
)

// ComputeFunc turns merged parameters and eased progress into a partial
// transform. Implementations must be pure and must tolerate progress
// outside [0,1] (overshooting easing curves clamp internally).
type ComputeFunc func(p Params, progress float64) transform.Transform

type entry struct {
	category Category
	fn       ComputeFunc
}

// table maps gesture name to its (category, compute) pair. It is populated
// by the category files' init functions and by Register, then read-only at
// animation time; the coordinator resolves every definition against it once
// at construction.
var table = map[string]entry{}

// Register adds a gesture compute function under name. Built-in gestures
// register at package init through the same path; callers can extend the set
// with custom gestures before building a coordinator. Registering a name
// twice is an error.
func Register(name string, c Category, fn ComputeFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("animators: register %q: name and compute function required", name)
	}
	if _, exists := table[name]; exists {
		return fmt.Errorf("animators: gesture %q already registered", name)
	}
	table[name] = entry{category: c, fn: fn}
	return nil
}

func mustRegister(name string, c Category, fn ComputeFunc) {
	if err := Register(name, c, fn); err != nil {
		panic(err)
	}
}

// Lookup resolves a gesture name to its category and compute function.
func Lookup(name string) (Category, ComputeFunc, bool) {
	e, ok := table[name]
	return e.category, e.fn, ok
}

// Names returns every registered gesture name, sorted.
func Names() []string {
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
