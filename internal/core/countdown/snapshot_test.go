package countdown

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRoundsUp(t *testing.T) {
	tests := []struct {
		remaining   time.Duration
		wantMinutes int
		wantSeconds int
	}{
		{125 * time.Second, 2, 5},
		{120*time.Second + 50*time.Millisecond, 2, 1},
		{59*time.Second + 950*time.Millisecond, 1, 0},
		{100 * time.Millisecond, 0, 1},
		{25 * time.Minute, 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.remaining.String(), func(t *testing.T) {
			snapshot := Derive(tt.remaining, 25*time.Minute)
			assert.Equal(t, tt.wantMinutes, snapshot.MinutesLeft)
			assert.Equal(t, tt.wantSeconds, snapshot.SecondsLeft)
		})
	}
}

func TestDerivePulse(t *testing.T) {
	for _, remaining := range []time.Duration{time.Second, 7 * time.Second, 90 * time.Second, 1499 * time.Second} {
		snapshot := Derive(remaining, 25*time.Minute)
		want := math.Abs(math.Sin(0.25*remaining.Seconds()))*0.4 + 0.6
		assert.InDelta(t, want, snapshot.PulseOpacity, 1e-12)
		assert.GreaterOrEqual(t, snapshot.PulseOpacity, 0.6)
		assert.LessOrEqual(t, snapshot.PulseOpacity, 1.0)
	}
}

func TestDeriveFlash(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      bool
	}{
		{"nine seconds is odd", 9 * time.Second, true},
		{"eight seconds is even", 8 * time.Second, false},
		{"rounds up into odd", 8*time.Second + 100*time.Millisecond, true},
		{"eleven is outside window", 11 * time.Second, false},
		{"one minute eleven", 71 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.remaining, time.Minute*5).FlashOn)
		})
	}
}

func TestDeriveFraction(t *testing.T) {
	assert.Equal(t, 0.5, Derive(150*time.Second, 300*time.Second).FractionRemaining)
	assert.Equal(t, 0.0, Derive(time.Second, 0).FractionRemaining)
	assert.Equal(t, "02:05", Derive(125*time.Second, 300*time.Second).Clock())
}
