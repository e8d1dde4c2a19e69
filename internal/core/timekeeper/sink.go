package timekeeper

import (
	"context"

	"fruitful/internal/core/model"
)

// Sink receives TimeKeeper updates as callbacks.
type Sink interface {
	OnPhaseChanged(phase model.Phase, cycleIndex, totalCycles int)
	OnTick(snapshot model.Snapshot)
	OnExpired()
	OnPauseChanged(paused bool)
}

// Forward delivers events to sink until the channel closes or ctx is done.
func Forward(ctx context.Context, events <-chan Event, sink Sink) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			Dispatch(event, sink)
		}
	}
}

// Dispatch delivers a single event to sink.
func Dispatch(event Event, sink Sink) {
	switch event.Type {
	case EventPhaseChange:
		sink.OnPhaseChanged(event.Phase, event.CycleIndex, event.TotalCycles)
	case EventProgress:
		sink.OnTick(event.Snapshot)
	case EventExpired:
		sink.OnExpired()
	case EventPauseChange:
		sink.OnPauseChanged(event.Paused)
	}
}
