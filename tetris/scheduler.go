package tetris

import "time"

// Ticker receives elapsed time from a Scheduler.
type Ticker interface {
	Tick(dt time.Duration)
}

// Scheduler delivers ticks to a Ticker at a cadence of its choosing, for
// example once per rendered frame. Implementations must call Tick on the same
// goroutine that issues commands to the session.
type Scheduler interface {
	// Start begins delivering ticks to t.
	Start(t Ticker)
	// Stop suspends tick delivery.
	Stop()
}

type manualScheduler struct{}

func (manualScheduler) Start(Ticker) {}
func (manualScheduler) Stop()        {}
