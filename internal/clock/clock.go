// Package clock lets time-dependent code run against a controllable clock.
// Production code uses Real; tests use Fake.
package clock

import "time"

type Clock interface {
	Now() time.Time
	// NewTicker delivers ticks every d on C. Panics if d <= 0.
	NewTicker(d time.Duration) *Ticker
}

// Ticker mirrors time.Ticker. C has capacity 1 and drops ticks when the
// reader falls behind.
type Ticker struct {
	C <-chan time.Time

	stop func()
}

func (t *Ticker) Stop() { t.stop() }

type realClock struct{}

func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) *Ticker {
	t := time.NewTicker(d)
	return &Ticker{C: t.C, stop: t.Stop}
}
