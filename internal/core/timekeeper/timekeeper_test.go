package timekeeper

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitful/internal/core/clock"
	"fruitful/internal/core/model"
)

type countingNotifier struct {
	calls atomic.Int32
}

func (notifier *countingNotifier) Notify() {
	notifier.calls.Add(1)
}

// newTestKeeper uses one-minute ticks so a 25 minute focus interval takes 25 ticks.
func newTestKeeper(t *testing.T) (*TimeKeeper, *clock.Manual, <-chan Event, *countingNotifier) {
	t.Helper()
	manual := clock.NewManual(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	keeper := New(Config{TickInterval: time.Minute, Clock: manual})
	notifier := &countingNotifier{}
	keeper.SetNotifier(notifier)
	events := keeper.Subscribe(64)
	keeper.Start()
	t.Cleanup(keeper.Stop)
	return keeper, manual, events, notifier
}

func next(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case event, ok := <-events:
		require.True(t, ok, "event channel closed")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func requirePhase(t *testing.T, event Event, phase model.Phase, cycleIndex int, duration time.Duration) {
	t.Helper()
	require.Equal(t, EventPhaseChange, event.Type)
	require.Equal(t, phase, event.Phase)
	require.Equal(t, cycleIndex, event.CycleIndex)
	require.Equal(t, model.TotalCycles, event.TotalCycles)
	require.Equal(t, duration, event.Duration)
}

func TestStartBeginsFirstFocus(t *testing.T) {
	keeper, manual, events, notifier := newTestKeeper(t)

	requirePhase(t, next(t, events), model.PhaseFocus, 1, model.FocusDuration)
	assert.Equal(t, int32(1), notifier.calls.Load())
	assert.Equal(t, 1, manual.Active())

	status := keeper.Status()
	assert.Equal(t, model.CycleState{Phase: model.PhaseFocus, CycleIndex: 1, TotalCycles: 4}, status.Cycle)
	assert.Equal(t, 1.0, status.Snapshot.FractionRemaining)
	assert.True(t, status.Running)
	assert.False(t, status.Paused)
}

func TestTicksEmitProgressThenExpire(t *testing.T) {
	_, manual, events, notifier := newTestKeeper(t)
	next(t, events)

	previous := 1.0
	for i := 1; i < 25; i++ {
		manual.Fire()
		event := next(t, events)
		require.Equal(t, EventProgress, event.Type)
		require.Equal(t, model.PhaseFocus, event.Phase)
		require.Equal(t, model.FocusDuration-time.Duration(i)*time.Minute, event.Snapshot.Remaining)
		require.Less(t, event.Snapshot.FractionRemaining, previous)
		previous = event.Snapshot.FractionRemaining
	}

	manual.Fire()
	assert.Equal(t, EventExpired, next(t, events).Type)
	requirePhase(t, next(t, events), model.PhaseBreak, 1, model.ShortBreakDuration)
	assert.Equal(t, int32(2), notifier.calls.Load())
	assert.Equal(t, 1, manual.Active())
}

func TestTogglePauseFreezesCountdown(t *testing.T) {
	keeper, manual, events, _ := newTestKeeper(t)
	next(t, events)

	manual.Fire()
	require.Equal(t, EventProgress, next(t, events).Type)

	keeper.TogglePause()
	paused := next(t, events)
	require.Equal(t, EventPauseChange, paused.Type)
	require.True(t, paused.Paused)

	for i := 0; i < 5; i++ {
		manual.Fire()
	}
	status := keeper.Status()
	assert.True(t, status.Paused)
	assert.Equal(t, 24*time.Minute, status.Snapshot.Remaining)
	assert.Empty(t, events)

	keeper.TogglePause()
	resumed := next(t, events)
	require.Equal(t, EventPauseChange, resumed.Type)
	require.False(t, resumed.Paused)

	manual.Fire()
	progress := next(t, events)
	require.Equal(t, EventProgress, progress.Type)
	assert.Equal(t, 23*time.Minute, progress.Snapshot.Remaining)
}

func TestSkipStartsNextInterval(t *testing.T) {
	keeper, manual, events, notifier := newTestKeeper(t)
	next(t, events)

	keeper.Skip()
	assert.Equal(t, EventExpired, next(t, events).Type)
	requirePhase(t, next(t, events), model.PhaseBreak, 1, model.ShortBreakDuration)

	keeper.Skip()
	next(t, events)
	requirePhase(t, next(t, events), model.PhaseFocus, 2, model.FocusDuration)

	assert.Equal(t, int32(3), notifier.calls.Load())
	assert.Equal(t, 1, manual.Active())
}

func TestSkipClearsPause(t *testing.T) {
	keeper, manual, events, _ := newTestKeeper(t)
	next(t, events)

	keeper.TogglePause()
	next(t, events)
	keeper.Skip()
	next(t, events)
	next(t, events)

	manual.Fire()
	assert.Equal(t, EventProgress, next(t, events).Type)
}

func TestResetReturnsToFirstCycle(t *testing.T) {
	keeper, _, events, _ := newTestKeeper(t)
	next(t, events)

	for i := 0; i < 3; i++ {
		keeper.Skip()
		next(t, events)
		next(t, events)
	}
	require.Equal(t, 2, keeper.Status().Cycle.CycleIndex)

	keeper.Reset()
	requirePhase(t, next(t, events), model.PhaseFocus, 1, model.FocusDuration)
	assert.Equal(t, 1, keeper.Status().Cycle.CycleIndex)
}

func TestLongBreakAfterLastFocus(t *testing.T) {
	keeper, _, events, _ := newTestKeeper(t)
	next(t, events)

	var last Event
	for i := 0; i < 7; i++ {
		keeper.Skip()
		next(t, events)
		last = next(t, events)
	}
	requirePhase(t, last, model.PhaseBreak, 4, model.LongBreakDuration)

	keeper.Skip()
	next(t, events)
	requirePhase(t, next(t, events), model.PhaseFocus, 1, model.FocusDuration)
}

func TestStopClosesSubscribers(t *testing.T) {
	manual := clock.NewManual(time.Time{})
	keeper := New(Config{Clock: manual})
	events := keeper.Subscribe(8)
	keeper.Start()
	next(t, events)

	keeper.Stop()

	for range events {
	}
	assert.Equal(t, 0, manual.Active())
	assert.Equal(t, Status{}, keeper.Status())

	keeper.TogglePause()
	keeper.Skip()
	keeper.Reset()
	keeper.Stop()
}

func TestOperationsBeforeStartAreNoops(t *testing.T) {
	keeper := New(Config{Clock: clock.NewManual(time.Time{})})

	keeper.TogglePause()
	keeper.Skip()
	keeper.Reset()

	assert.Equal(t, Status{}, keeper.Status())
}

func TestNilNotifierDisablesNotifications(t *testing.T) {
	keeper, _, events, notifier := newTestKeeper(t)
	next(t, events)

	keeper.SetNotifier(nil)
	keeper.Skip()
	next(t, events)
	next(t, events)

	assert.Equal(t, int32(1), notifier.calls.Load())
}
