package loop

import (
	"sync"

	"github.com/plus3/blockfall/tetris"
)

// Controller accepts queued commands. *tetris.Session implements it.
type Controller interface {
	Apply(cmd tetris.Command)
}

// Commands buffers session commands until the next frame so that input
// produced on other goroutines is applied on the game goroutine. It is safe
// for concurrent use.
type Commands struct {
	mu      sync.Mutex
	pending []tetris.Command
	drain   []tetris.Command
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues cmd for the next flush.
func (c *Commands) Push(cmd tetris.Command) {
	c.mu.Lock()
	c.pending = append(c.pending, cmd)
	c.mu.Unlock()
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Flush applies every queued command to target in FIFO order and returns how
// many were applied. Commands pushed while flushing wait for the next flush.
// A nil target discards the queue.
func (c *Commands) Flush(target Controller) int {
	c.mu.Lock()
	c.pending, c.drain = c.drain[:0], c.pending
	c.mu.Unlock()

	if target == nil {
		return 0
	}

	for _, cmd := range c.drain {
		target.Apply(cmd)
	}
	return len(c.drain)
}
