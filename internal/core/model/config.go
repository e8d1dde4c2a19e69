package model

import "time"

// Fixed interval defaults. Counts and lengths are not user configurable.
const (
	TotalCycles        = 4
	FocusDuration      = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 25 * time.Minute
	TickInterval       = 100 * time.Millisecond
)
