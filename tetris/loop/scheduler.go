// Package loop drives a tetris.Session from a frame clock. It runs
// registered systems, drains queued commands and delivers ticks, all on the
// goroutine that calls Once or Run.
package loop

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Frames          int64
	Ticks           int64
	CommandsApplied int64
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler is a tetris.Scheduler backed by an explicit frame loop.
type Scheduler struct {
	systems     []System
	systemStats []*systemStatsInternal
	commands    *Commands

	target  tetris.Ticker
	started bool

	frames          int64
	ticks           int64
	commandsApplied int64
}

var _ tetris.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a scheduler with no systems and no bound ticker.
func NewScheduler() *Scheduler {
	return &Scheduler{
		systems:  make([]System, 0),
		commands: newCommands(),
	}
}

// Register adds a system. Systems run in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	if name := systemType.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%T", system)
}

// Commands returns the queue drained at the start of every frame.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Start binds t and enables tick delivery. It implements tetris.Scheduler.
func (s *Scheduler) Start(t tetris.Ticker) {
	s.target = t
	s.started = true
}

// Stop disables tick delivery. The ticker stays bound so queued commands such
// as a restart still reach it.
func (s *Scheduler) Stop() {
	s.started = false
}

// Bind attaches t without enabling ticks, so commands reach a session that
// has not been started yet.
func (s *Scheduler) Bind(t tetris.Ticker) {
	s.target = t
}

// Started reports whether ticks are being delivered.
func (s *Scheduler) Started() bool {
	return s.started
}

// Once runs a single frame: queued commands, then systems, then commands the
// systems queued, then one tick of dt if started.
func (s *Scheduler) Once(dt time.Duration) {
	s.frames++
	frame := newFrame(s.frames, dt, s.commands)

	s.flush()

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.flush()

	if s.started && s.target != nil {
		s.target.Tick(dt)
		s.ticks++
	}
}

func (s *Scheduler) flush() {
	controller, _ := s.target.(Controller)
	s.commandsApplied += int64(s.commands.Flush(controller))
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about frame and system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Frames:          s.frames,
		Ticks:           s.ticks,
		CommandsApplied: s.commandsApplied,
		SystemCount:     len(s.systems),
		Systems:         make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
