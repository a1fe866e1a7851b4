// Package emotive is the gesture-animation core of a real-time mascot
// engine: it turns named gesture requests ("bounce", "spin", "breathe")
// into a continuously updated visual transform consumed once per rendered
// frame.
//
// The engine is frame-driven and single-threaded. A render loop calls Tick
// once per frame with the current timestamp; the lifecycle calls (Start,
// Chain, Pause, Resume, Stop, Reset) run on the same goroutine. The core
// computes transforms only; painting pixels from them is the renderer's job
// (see cmd/mascot for a reference loop).
package emotive
