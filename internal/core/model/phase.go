package model

import (
	"fmt"
	"time"
)

// Phase is the kind of interval currently running.
type Phase int

const (
	PhaseFocus Phase = iota
	PhaseBreak
)

// String returns the label shown to the user.
func (phase Phase) String() string {
	switch phase {
	case PhaseFocus:
		return "FOCUS"
	case PhaseBreak:
		return "BREAK"
	default:
		return fmt.Sprintf("Phase(%d)", int(phase))
	}
}

// CycleState is the state owned by the interval state machine.
type CycleState struct {
	Phase       Phase
	CycleIndex  int
	TotalCycles int
}

// Interval is the outcome of a transition: what runs next and for how long.
type Interval struct {
	Phase       Phase
	Duration    time.Duration
	CycleIndex  int
	TotalCycles int
}

// CycleLabel renders the cycle counter, e.g. "2/4".
func (interval Interval) CycleLabel() string {
	return fmt.Sprintf("%d/%d", interval.CycleIndex, interval.TotalCycles)
}
