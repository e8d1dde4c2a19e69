// Package cycle decides which interval follows the current one.
package cycle

import "fruitful/internal/core/model"

// Machine is the focus/break interval state machine.
type Machine struct {
	phase       model.Phase
	cycleIndex  int
	totalCycles int
}

// New creates a machine at {Focus, 0}. A non-positive total falls back to
// model.TotalCycles.
func New(totalCycles int) *Machine {
	if totalCycles <= 0 {
		totalCycles = model.TotalCycles
	}
	return &Machine{
		phase:       model.PhaseFocus,
		totalCycles: totalCycles,
	}
}

// State returns the current cycle state.
func (machine *Machine) State() model.CycleState {
	return model.CycleState{
		Phase:       machine.phase,
		CycleIndex:  machine.cycleIndex,
		TotalCycles: machine.totalCycles,
	}
}

// Transition advances to the next interval and returns it.
func (machine *Machine) Transition() model.Interval {
	machine.clamp()

	if machine.phase == model.PhaseBreak && machine.cycleIndex == machine.totalCycles {
		machine.cycleIndex = 0
	}

	duration := model.ShortBreakDuration
	switch {
	case machine.phase == model.PhaseBreak || machine.cycleIndex == 0:
		machine.cycleIndex++
		machine.phase = model.PhaseFocus
		duration = model.FocusDuration
	case machine.cycleIndex == machine.totalCycles:
		machine.phase = model.PhaseBreak
		duration = model.LongBreakDuration
	default:
		machine.phase = model.PhaseBreak
	}

	return model.Interval{
		Phase:       machine.phase,
		Duration:    duration,
		CycleIndex:  machine.cycleIndex,
		TotalCycles: machine.totalCycles,
	}
}

// ResetCycle zeroes the cycle counter, keeps the phase, and transitions.
// With a zero counter the transition always lands on Focus 1.
func (machine *Machine) ResetCycle() model.Interval {
	machine.cycleIndex = 0
	return machine.Transition()
}

func (machine *Machine) clamp() {
	if machine.cycleIndex < 0 {
		machine.cycleIndex = 0
	}
	if machine.cycleIndex > machine.totalCycles {
		if machine.phase == model.PhaseBreak {
			machine.cycleIndex = 0
		} else {
			machine.cycleIndex = machine.totalCycles
		}
	}
}
