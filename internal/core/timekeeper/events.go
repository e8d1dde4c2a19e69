package timekeeper

import (
	"time"

	"fruitful/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventPhaseChange EventType = "phase_change"
	EventProgress    EventType = "progress"
	EventExpired     EventType = "expired"
	EventPauseChange EventType = "pause_change"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type        EventType
	Phase       model.Phase
	CycleIndex  int
	TotalCycles int
	Duration    time.Duration
	Snapshot    model.Snapshot
	Paused      bool
	At          time.Time
}
