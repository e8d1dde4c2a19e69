package model

import (
	"fmt"
	"time"
)

// Snapshot holds the display values derived from a countdown at one tick.
type Snapshot struct {
	Remaining         time.Duration
	Total             time.Duration
	FractionRemaining float64
	PulseOpacity      float64
	FlashOn           bool
	MinutesLeft       int
	SecondsLeft       int
}

// Clock renders the remaining time as MM:SS.
func (snapshot Snapshot) Clock() string {
	return fmt.Sprintf("%02d:%02d", snapshot.MinutesLeft, snapshot.SecondsLeft)
}
