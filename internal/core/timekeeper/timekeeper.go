// Package timekeeper drives the focus/break cycle: it owns the interval state
// machine, the countdown and the tick source, and publishes events to
// observers.
package timekeeper

import (
	"log/slog"
	"sync"
	"time"

	"fruitful/internal/core/clock"
	"fruitful/internal/core/countdown"
	"fruitful/internal/core/cycle"
	"fruitful/internal/core/model"
)

// Notifier fires a system alert. It is called on every phase change from the
// TimeKeeper loop and must not call back into the TimeKeeper synchronously.
type Notifier interface {
	Notify()
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	TotalCycles  int
	Clock        clock.Clock
	Logger       *slog.Logger
}

// Status is a point-in-time view of the timer.
type Status struct {
	Cycle    model.CycleState
	Snapshot model.Snapshot
	Paused   bool
	Running  bool
}

// TimeKeeper serializes every timer operation onto a single loop goroutine.
type TimeKeeper struct {
	mu       sync.Mutex
	options  Config
	notifier Notifier
	events   []chan Event
	commands chan func()
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool

	// Owned by the loop goroutine.
	machine   *cycle.Machine
	countdown *countdown.Engine
	ticker    clock.Ticker
}

// New creates a TimeKeeper with the provided options.
func New(options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = model.TickInterval
	}
	if options.TotalCycles <= 0 {
		options.TotalCycles = model.TotalCycles
	}
	if options.Clock == nil {
		options.Clock = clock.Real{}
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &TimeKeeper{
		options:   options,
		commands:  make(chan func()),
		machine:   cycle.New(options.TotalCycles),
		countdown: countdown.New(options.TickInterval),
	}
}

// SetNotifier injects the phase change notifier. Nil disables notifications.
func (keeper *TimeKeeper) SetNotifier(notifier Notifier) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.notifier = notifier
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start launches the loop and begins the first focus interval.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	keeper.doneCh = make(chan struct{})
	stopCh, doneCh := keeper.stopCh, keeper.doneCh
	keeper.mu.Unlock()

	go keeper.run(stopCh, doneCh)
}

// Stop terminates the loop, waits for it to exit and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = false
	close(keeper.stopCh)
	doneCh := keeper.doneCh
	keeper.mu.Unlock()

	<-doneCh

	keeper.mu.Lock()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// TogglePause pauses or resumes the running countdown.
func (keeper *TimeKeeper) TogglePause() {
	keeper.do(keeper.togglePause)
}

// Skip abandons the running countdown and starts the next interval.
func (keeper *TimeKeeper) Skip() {
	keeper.do(keeper.skip)
}

// Reset zeroes the cycle counter and starts the next interval.
func (keeper *TimeKeeper) Reset() {
	keeper.do(keeper.reset)
}

// Status returns the current cycle and countdown state. It returns a zero
// Status when the TimeKeeper is not running.
func (keeper *TimeKeeper) Status() Status {
	reply := make(chan Status, 1)
	keeper.mu.Lock()
	doneCh := keeper.doneCh
	keeper.mu.Unlock()

	if !keeper.do(func() { reply <- keeper.status() }) {
		return Status{}
	}
	select {
	case status := <-reply:
		return status
	case <-doneCh:
		return Status{}
	}
}

func (keeper *TimeKeeper) do(command func()) bool {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return false
	}
	stopCh := keeper.stopCh
	keeper.mu.Unlock()

	select {
	case keeper.commands <- command:
		return true
	case <-stopCh:
		return false
	}
}

func (keeper *TimeKeeper) run(stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	defer keeper.stopTicker()

	keeper.advance(time.Now())

	for {
		var ticks <-chan time.Time
		if keeper.ticker != nil {
			ticks = keeper.ticker.C()
		}

		select {
		case <-stopCh:
			return
		case command := <-keeper.commands:
			command()
		case tickTime := <-ticks:
			keeper.tick(tickTime)
		}
	}
}

func (keeper *TimeKeeper) tick(tickTime time.Time) {
	snapshot, outcome := keeper.countdown.Tick()
	switch outcome {
	case countdown.OutcomeRunning:
		keeper.emit(Event{
			Type:     EventProgress,
			Phase:    keeper.machine.State().Phase,
			Snapshot: snapshot,
			At:       tickTime,
		})
	case countdown.OutcomeExpired:
		keeper.stopTicker()
		keeper.emit(Event{
			Type:  EventExpired,
			Phase: keeper.machine.State().Phase,
			At:    tickTime,
		})
		keeper.advance(tickTime)
	}
}

func (keeper *TimeKeeper) togglePause() {
	if !keeper.countdown.Active() {
		return
	}
	paused := keeper.countdown.TogglePause()
	keeper.emit(Event{
		Type:   EventPauseChange,
		Phase:  keeper.machine.State().Phase,
		Paused: paused,
		At:     time.Now(),
	})
}

func (keeper *TimeKeeper) skip() {
	now := time.Now()
	keeper.options.Logger.Debug("skipping interval", "phase", keeper.machine.State().Phase, "remaining", keeper.countdown.Remaining())
	keeper.countdown.Stop()
	keeper.stopTicker()
	keeper.emit(Event{
		Type:  EventExpired,
		Phase: keeper.machine.State().Phase,
		At:    now,
	})
	keeper.advance(now)
}

func (keeper *TimeKeeper) reset() {
	keeper.options.Logger.Debug("resetting cycle", "cycle", keeper.machine.State().CycleIndex)
	keeper.begin(keeper.machine.ResetCycle(), time.Now())
}

func (keeper *TimeKeeper) advance(now time.Time) {
	keeper.begin(keeper.machine.Transition(), now)
}

func (keeper *TimeKeeper) begin(interval model.Interval, now time.Time) {
	keeper.stopTicker()
	keeper.countdown.Start(interval.Duration)
	keeper.ticker = keeper.options.Clock.NewTicker(keeper.options.TickInterval)

	keeper.options.Logger.Debug("phase changed",
		"phase", interval.Phase,
		"cycle", interval.CycleLabel(),
		"duration", interval.Duration,
	)

	keeper.mu.Lock()
	notifier := keeper.notifier
	keeper.mu.Unlock()
	if notifier != nil {
		notifier.Notify()
	}

	keeper.emit(Event{
		Type:        EventPhaseChange,
		Phase:       interval.Phase,
		CycleIndex:  interval.CycleIndex,
		TotalCycles: interval.TotalCycles,
		Duration:    interval.Duration,
		At:          now,
	})
}

func (keeper *TimeKeeper) stopTicker() {
	if keeper.ticker != nil {
		keeper.ticker.Stop()
		keeper.ticker = nil
	}
}

func (keeper *TimeKeeper) status() Status {
	snapshot := keeper.countdown.Snapshot()
	return Status{
		Cycle:    keeper.machine.State(),
		Snapshot: snapshot,
		Paused:   keeper.countdown.Paused(),
		Running:  keeper.countdown.Active(),
	}
}

func (keeper *TimeKeeper) emit(event Event) {
	keeper.mu.Lock()
	events := append([]chan Event(nil), keeper.events...)
	keeper.mu.Unlock()

	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
