package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/loop"
)

var botMoves = []tetris.Command{
	tetris.CommandMoveLeft,
	tetris.CommandMoveLeft,
	tetris.CommandMoveRight,
	tetris.CommandMoveRight,
	tetris.CommandRotate,
	tetris.CommandSoftDrop,
	tetris.CommandHardDrop,
}

// BotSystem plays randomly: it issues about Rate commands per simulated second
// and restarts the game after a game over.
type BotSystem struct {
	Session *tetris.Session
	Rand    *rand.Rand
	Rate    float64

	budget   float64
	restarts int
}

func (b *BotSystem) Execute(frame *loop.Frame) {
	if b.Session.State() == tetris.StateGameOver {
		frame.Commands.Push(tetris.CommandRestart)
		b.restarts++
		return
	}

	b.budget += b.Rate * frame.Delta.Seconds()
	for b.budget >= 1 {
		b.budget--
		frame.Commands.Push(botMoves[b.Rand.IntN(len(botMoves))])
	}
}

// FrameStats collects per-frame durations.
type FrameStats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *FrameStats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}
