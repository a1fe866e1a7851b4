package gesture

import "time"

// TimeProvider supplies the coordinator's notion of "now" for lifecycle
// calls (Start, Pause, Resume). Tick takes its timestamp from the render
// loop directly; both must run on the same timeline. Inject a fake provider
// for deterministic tests.
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }
