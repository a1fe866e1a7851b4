package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joshtol/emotive-engine/easing"
	"gopkg.in/yaml.v3"
)

// Overlay file shape:
//
//	gestures:
//	  bounce:
//	    duration: 800ms
//	    easing: easeOutCubic
//	    loop: false
//	    exclusionGroup: vertical
//	    params:
//	      amplitude: 40
//
// Only the fields present are overridden; params merge key by key over the
// definition's defaults.
type overlayFile struct {
	Gestures map[string]overlayDef `yaml:"gestures"`
}

type overlayDef struct {
	Duration       *string            `yaml:"duration"`
	Easing         *string            `yaml:"easing"`
	Loop           *bool              `yaml:"loop"`
	ExclusionGroup *string            `yaml:"exclusionGroup"`
	Params         map[string]float64 `yaml:"params"`
}

// DefaultWithOverlay builds the built-in registry with a YAML overlay file
// applied on top.
func DefaultWithOverlay(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read overlay: %w", err)
	}
	return NewRegistryWithOverlay(builtins, data)
}

// NewRegistryWithOverlay applies YAML overrides to a base definition set and
// builds the registry. Overlay entries naming gestures absent from the base
// set are load-time errors, so a typo cannot silently define nothing.
func NewRegistryWithOverlay(base []Definition, overlayYAML []byte) (*Registry, error) {
	var file overlayFile
	if err := yaml.Unmarshal(overlayYAML, &file); err != nil {
		return nil, fmt.Errorf("config: parse overlay: %w", err)
	}

	index := make(map[string]int, len(base))
	merged := make([]Definition, len(base))
	for i, d := range base {
		merged[i] = d
		index[d.Name] = i
	}

	for name, o := range file.Gestures {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("config: overlay names unknown gesture %q", name)
		}
		d := merged[i]
		if o.Duration != nil {
			dur, err := time.ParseDuration(*o.Duration)
			if err != nil {
				return nil, fmt.Errorf("config: overlay gesture %q: %w", name, err)
			}
			d.Duration = dur
		}
		if o.Easing != nil {
			d.Easing = easing.Curve(*o.Easing)
		}
		if o.Loop != nil {
			d.Loop = *o.Loop
		}
		if o.ExclusionGroup != nil {
			d.ExclusionGroup = *o.ExclusionGroup
		}
		if len(o.Params) > 0 {
			params := make(map[string]float64, len(d.Params)+len(o.Params))
			for k, v := range d.Params {
				params[k] = v
			}
			for k, v := range o.Params {
				params[k] = v
			}
			d.Params = params
		}
		merged[i] = d
	}

	return NewRegistry(merged)
}
