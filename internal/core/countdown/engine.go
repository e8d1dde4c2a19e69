// Package countdown runs a single interval's countdown and derives the
// per-tick display snapshot.
package countdown

import (
	"time"

	"fruitful/internal/core/model"
)

// Outcome reports what a tick did.
type Outcome int

const (
	// OutcomeIdle means nothing happened: no countdown, or it is paused.
	OutcomeIdle Outcome = iota
	// OutcomeRunning means time was consumed and a snapshot is available.
	OutcomeRunning
	// OutcomeExpired means the countdown reached zero and is now finished.
	OutcomeExpired
)

// Engine owns one live countdown. It is not safe for concurrent use; the
// owner serializes calls.
type Engine struct {
	step      time.Duration
	remaining time.Duration
	total     time.Duration
	paused    bool
	active    bool
}

// New creates an engine that consumes step per tick.
func New(step time.Duration) *Engine {
	if step <= 0 {
		step = model.TickInterval
	}
	return &Engine{step: step}
}

// Start replaces any running countdown with a fresh one of the given length.
func (engine *Engine) Start(duration time.Duration) {
	engine.remaining = duration
	engine.total = duration
	engine.paused = false
	engine.active = true
}

// Stop discards the current countdown.
func (engine *Engine) Stop() {
	engine.active = false
}

// TogglePause flips the paused flag of the active countdown and returns it.
// Without an active countdown it does nothing.
func (engine *Engine) TogglePause() bool {
	if !engine.active {
		return engine.paused
	}
	engine.paused = !engine.paused
	return engine.paused
}

// Paused reports whether the countdown is paused.
func (engine *Engine) Paused() bool {
	return engine.paused
}

// Active reports whether a countdown is running or paused.
func (engine *Engine) Active() bool {
	return engine.active
}

// Remaining returns the time left on the countdown.
func (engine *Engine) Remaining() time.Duration {
	return engine.remaining
}

// Total returns the length the countdown was started with.
func (engine *Engine) Total() time.Duration {
	return engine.total
}

// Tick consumes one step.
func (engine *Engine) Tick() (model.Snapshot, Outcome) {
	if !engine.active || engine.paused {
		return model.Snapshot{}, OutcomeIdle
	}

	engine.remaining -= engine.step
	if engine.remaining <= 0 {
		engine.active = false
		return model.Snapshot{}, OutcomeExpired
	}
	return Derive(engine.remaining, engine.total), OutcomeRunning
}

// Snapshot derives the display values for the current state without ticking.
func (engine *Engine) Snapshot() model.Snapshot {
	return Derive(engine.remaining, engine.total)
}
