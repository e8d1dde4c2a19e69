package timekeeper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fruitful/internal/core/model"
)

type recordingSink struct {
	calls []string
}

func (sink *recordingSink) OnPhaseChanged(phase model.Phase, cycleIndex, totalCycles int) {
	sink.calls = append(sink.calls, phase.String()+" "+model.Interval{CycleIndex: cycleIndex, TotalCycles: totalCycles}.CycleLabel())
}

func (sink *recordingSink) OnTick(snapshot model.Snapshot) {
	sink.calls = append(sink.calls, "tick "+snapshot.Clock())
}

func (sink *recordingSink) OnExpired() {
	sink.calls = append(sink.calls, "expired")
}

func (sink *recordingSink) OnPauseChanged(paused bool) {
	if paused {
		sink.calls = append(sink.calls, "paused")
		return
	}
	sink.calls = append(sink.calls, "resumed")
}

func TestForwardDispatchesUntilClosed(t *testing.T) {
	events := make(chan Event, 8)
	events <- Event{Type: EventPhaseChange, Phase: model.PhaseBreak, CycleIndex: 2, TotalCycles: 4}
	events <- Event{Type: EventProgress, Snapshot: model.Snapshot{MinutesLeft: 4, SecondsLeft: 59}}
	events <- Event{Type: EventPauseChange, Paused: true}
	events <- Event{Type: EventPauseChange, Paused: false}
	events <- Event{Type: EventExpired}
	close(events)

	sink := &recordingSink{}
	Forward(context.Background(), events, sink)

	assert.Equal(t, []string{"BREAK 2/4", "tick 04:59", "paused", "resumed", "expired"}, sink.calls)
}

func TestForwardStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Forward(ctx, make(chan Event), &recordingSink{})
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Forward did not return after cancel")
	}
}
