package clock

import (
	"sync"
	"time"
)

// FakeClock only moves when told to.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

type fakeTicker struct {
	c       chan time.Time
	period  time.Duration
	next    time.Time
	stopped bool
}

func Fake(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (f *FakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	ft := &fakeTicker{c: make(chan time.Time, 1), period: d, next: f.now.Add(d)}
	f.tickers = append(f.tickers, ft)
	return &Ticker{C: ft.c, stop: func() {
		f.mu.Lock()
		ft.stopped = true
		f.mu.Unlock()
	}}
}

// Set jumps to t without firing tickers.
func (f *FakeClock) Set(t time.Time) {
	f.mu.Lock()
	f.now = t
	f.mu.Unlock()
}

// Advance moves the clock forward and fires every ticker whose deadline
// was passed.
func (f *FakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
	for _, t := range f.tickers {
		if t.stopped {
			continue
		}
		fired := false
		for !t.next.After(f.now) {
			t.next = t.next.Add(t.period)
			fired = true
		}
		if fired {
			select {
			case t.c <- f.now:
			default:
			}
		}
	}
}
