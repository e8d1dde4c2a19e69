package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualFiresActiveTickers(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	manual := NewManual(start)
	ticker := manual.NewTicker(100 * time.Millisecond)

	received := make(chan time.Time, 1)
	go func() {
		received <- <-ticker.C()
	}()

	manual.Fire()

	select {
	case at := <-received:
		assert.Equal(t, start.Add(100*time.Millisecond), at)
		assert.Equal(t, at, manual.Now())
	case <-time.After(time.Second):
		t.Fatal("expected a tick")
	}
}

func TestManualFireReturnsWhenTickerStops(t *testing.T) {
	manual := NewManual(time.Time{})
	ticker := manual.NewTicker(time.Second)

	fired := make(chan struct{})
	go func() {
		manual.Fire()
		close(fired)
	}()

	ticker.Stop()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("Fire blocked on a stopped ticker")
	}
}

func TestManualStoppedTickerIsSilent(t *testing.T) {
	manual := NewManual(time.Time{})
	ticker := manual.NewTicker(time.Second)
	require.Equal(t, 1, manual.Active())

	ticker.Stop()
	ticker.Stop()
	manual.Fire()

	assert.Equal(t, 0, manual.Active())
	select {
	case <-ticker.C():
		t.Fatal("stopped ticker fired")
	default:
	}
}

func TestRealTicker(t *testing.T) {
	ticker := Real{}.NewTicker(time.Millisecond)
	defer ticker.Stop()

	select {
	case <-ticker.C():
	case <-time.After(time.Second):
		t.Fatal("real ticker did not fire")
	}
}
