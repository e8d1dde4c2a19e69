package clock

import (
	"sync"
	"time"
)

// Manual is a Clock whose tickers only fire when Fire is called.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// NewTicker implements Clock.
func (manual *Manual) NewTicker(interval time.Duration) Ticker {
	ticker := &manualTicker{
		clock:    manual,
		interval: interval,
		ch:       make(chan time.Time),
		done:     make(chan struct{}),
	}
	manual.mu.Lock()
	manual.tickers = append(manual.tickers, ticker)
	manual.mu.Unlock()
	return ticker
}

// Fire delivers one tick to every active ticker. It blocks until each tick has
// been received or its ticker has been stopped, so a receiver that handles
// ticks one at a time stays in lockstep with the caller.
func (manual *Manual) Fire() {
	manual.mu.Lock()
	tickers := append([]*manualTicker(nil), manual.tickers...)
	manual.mu.Unlock()

	for _, ticker := range tickers {
		manual.mu.Lock()
		manual.now = manual.now.Add(ticker.interval)
		now := manual.now
		manual.mu.Unlock()

		select {
		case ticker.ch <- now:
		case <-ticker.done:
		}
	}
}

// Now returns the manual clock's current time.
func (manual *Manual) Now() time.Time {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// Active returns the number of tickers that have not been stopped.
func (manual *Manual) Active() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return len(manual.tickers)
}

func (manual *Manual) remove(target *manualTicker) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	for i, ticker := range manual.tickers {
		if ticker == target {
			manual.tickers = append(manual.tickers[:i], manual.tickers[i+1:]...)
			close(ticker.done)
			return
		}
	}
}

type manualTicker struct {
	clock    *Manual
	interval time.Duration
	ch       chan time.Time
	done     chan struct{}
}

func (ticker *manualTicker) C() <-chan time.Time {
	return ticker.ch
}

func (ticker *manualTicker) Stop() {
	ticker.clock.remove(ticker)
}
