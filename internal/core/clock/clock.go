// Package clock abstracts the periodic tick source so the timer can be driven
// by real time in production and by hand in tests.
package clock

import "time"

// Clock creates tickers.
type Clock interface {
	NewTicker(interval time.Duration) Ticker
}

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Real implements Clock with time.Ticker.
type Real struct{}

// NewTicker implements Clock.
func (Real) NewTicker(interval time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(interval)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (ticker *realTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker *realTicker) Stop() {
	ticker.ticker.Stop()
}
