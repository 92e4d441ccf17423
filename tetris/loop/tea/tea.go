// Package tea drives a loop.Scheduler from a Bubble Tea program using
// tea.Tick, for terminal front ends.
package tea

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/loop"
)

// DefaultInterval is roughly one frame at 60Hz.
const DefaultInterval = 16 * time.Millisecond

// TickMsg is delivered by the tick chain started by Driver.Init.
type TickMsg time.Time

// Driver turns TickMsg values into scheduler frames. Embed it in a tea.Model
// and forward messages from Update.
type Driver struct {
	scheduler *loop.Scheduler
	interval  time.Duration
	last      time.Time
	maxDelta  time.Duration
}

// New returns a driver that ticks scheduler every interval. Elapsed time per
// frame is capped at four intervals so a stalled terminal does not turn into
// a burst of gravity.
func New(scheduler *loop.Scheduler, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{
		scheduler: scheduler,
		interval:  interval,
		maxDelta:  4 * interval,
	}
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init starts the tick chain.
func (d *Driver) Init() tea.Cmd {
	d.last = time.Time{}
	return tickCmd(d.interval)
}

// Update runs one frame for a TickMsg and returns the command for the next
// one. Other messages return nil.
func (d *Driver) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok {
		return nil
	}

	now := time.Time(tick)
	dt := d.interval
	if !d.last.IsZero() {
		dt = min(now.Sub(d.last), d.maxDelta)
	}
	if dt < 0 {
		dt = 0
	}
	d.last = now

	d.scheduler.Once(dt)
	return tickCmd(d.interval)
}

// Push queues a session command for the next frame, typically from a key
// handler in the host model.
func (d *Driver) Push(cmd tetris.Command) {
	d.scheduler.Commands().Push(cmd)
}
