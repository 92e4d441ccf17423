package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/loop"
)

func TestFrameStatsFinalize(t *testing.T) {
	stats := FrameStats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	stats.Finalize()

	assert.Equal(t, time.Millisecond, stats.Min)
	assert.Equal(t, 5*time.Millisecond, stats.Max)
	assert.Equal(t, 3*time.Millisecond, stats.Avg)

	empty := FrameStats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func soak(t *testing.T, frames int) (*loop.Scheduler, *tetris.Session, *BotSystem) {
	t.Helper()

	scheduler := loop.NewScheduler()
	session := tetris.NewSession(tetris.Config{
		Scheduler: scheduler,
		Rand:      rand.New(rand.NewPCG(7, 1)),
	})
	scheduler.Bind(session)

	bot := &BotSystem{Session: session, Rand: rand.New(rand.NewPCG(7, 2)), Rate: 30}
	scheduler.Register(bot)
	session.Start()

	for range frames {
		scheduler.Once(16 * time.Millisecond)
	}
	return scheduler, session, bot
}

func TestBotPlaysAndRestarts(t *testing.T) {
	_, session, bot := soak(t, 20000)

	stats := session.Stats()
	assert.Greater(t, stats.Locks, 0)
	assert.Greater(t, bot.restarts, 0)
	assert.Equal(t, bot.restarts+1, stats.Games)
	assert.NotEqual(t, tetris.StateIdle, session.State())
}

func TestBotRespectsRate(t *testing.T) {
	scheduler := loop.NewScheduler()
	session := tetris.NewSession(tetris.Config{})
	bot := &BotSystem{Session: session, Rand: rand.New(rand.NewPCG(1, 1)), Rate: 10}
	scheduler.Register(bot)

	// Nothing is bound, so the flush discards what the bot queued.
	for range 10 {
		scheduler.Once(100 * time.Millisecond)
	}
	assert.InDelta(t, 0, bot.budget, 1)
	assert.Equal(t, 0, scheduler.Commands().Len())
	assert.Equal(t, int64(0), scheduler.GetStats().CommandsApplied)
}

func TestReportGenerate(t *testing.T) {
	scheduler, session, bot := soak(t, 2000)

	report := &Report{
		Duration:  time.Second,
		Seed:      7,
		Frame:     16 * time.Millisecond,
		Actions:   30,
		TotalTime: time.Second,
		FrameTime: FrameStats{Avg: time.Microsecond},
		Scheduler: scheduler.GetStats(),
		Game:      session.Stats(),
		Restarts:  bot.restarts,
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Tetris Soak Report")
	assert.Contains(t, out, "- **Total Frames:** 2000")
	assert.Contains(t, out, "- **Simulated Time:** 32s")
	assert.Contains(t, out, "- **BotSystem:** 2000 runs")
	assert.Contains(t, out, "### Spawns")
	assert.Contains(t, out, "- I: ")
	assert.NotContains(t, out, "GC Pause Durations")

	assert.Len(t, report.Spawns(), tetris.NumKinds)
	assert.Len(t, report.Clears(), session.Stats().MaxClear()+1)
}
