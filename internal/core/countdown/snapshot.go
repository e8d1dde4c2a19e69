package countdown

import (
	"math"
	"time"

	"fruitful/internal/core/model"
)

const (
	pulseRate  = 0.25
	pulseDepth = 0.4
	pulseFloor = 0.6

	flashWindowSeconds = 10
)

// Derive computes the snapshot for a countdown with remaining time left out
// of total.
func Derive(remaining, total time.Duration) model.Snapshot {
	if remaining < 0 {
		remaining = 0
	}

	wholeSeconds := int((remaining + time.Second - 1) / time.Second)
	minutes := wholeSeconds / 60
	seconds := wholeSeconds % 60

	return model.Snapshot{
		Remaining:         remaining,
		Total:             total,
		FractionRemaining: fraction(remaining, total),
		PulseOpacity:      math.Abs(math.Sin(pulseRate*remaining.Seconds()))*pulseDepth + pulseFloor,
		FlashOn:           minutes == 0 && seconds <= flashWindowSeconds && seconds%2 == 1,
		MinutesLeft:       minutes,
		SecondsLeft:       seconds,
	}
}

func fraction(remaining, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	value := float64(remaining) / float64(total)
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
