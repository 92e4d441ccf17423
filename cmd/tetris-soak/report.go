package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/loop"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Frame    time.Duration
	Actions  float64

	// Results
	TotalTime      time.Duration
	FrameTime      FrameStats
	Scheduler      *loop.SchedulerStats
	Game           *tetris.Stats
	Restarts       int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// KindCount is one row of the spawn histogram.
type KindCount struct {
	Kind  tetris.Kind
	Count int
}

// ClearCount is one row of the line clear histogram.
type ClearCount struct {
	Lines int
	Count int
}

func (r *Report) Spawns() []KindCount {
	out := make([]KindCount, 0, tetris.NumKinds)
	for k := tetris.Kind(0); k < tetris.NumKinds; k++ {
		out = append(out, KindCount{Kind: k, Count: r.Game.Spawns(k)})
	}
	return out
}

func (r *Report) Clears() []ClearCount {
	out := make([]ClearCount, 0, r.Game.MaxClear()+1)
	for lines := 0; lines <= r.Game.MaxClear(); lines++ {
		out = append(out, ClearCount{Lines: lines, Count: r.Game.Clears(lines)})
	}
	return out
}

// SimulatedTime is the game time covered by the run.
func (r *Report) SimulatedTime() time.Duration {
	return time.Duration(r.Scheduler.Frames) * r.Frame
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Frame Step:** {{.Frame}}
- **Bot Actions/s:** {{.Actions}}

## Performance Results
- **Total Frames:** {{.Scheduler.Frames}}
- **Simulated Time:** {{.SimulatedTime}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
- **Commands Applied:** {{.Scheduler.CommandsApplied}}
{{range .Scheduler.Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Games
- **Games Started:** {{.Game.Games}}
- **Restarts After Game Over:** {{.Restarts}}
- **Pieces Locked:** {{.Game.Locks}}
- **Hard Drops:** {{.Game.HardDrops}}
- **Lines Cleared:** {{.Game.Lines}}
- **Top Score:** {{.Game.TopScore}}
- **Top Level:** {{.Game.TopLevel}}

### Spawns
{{range .Spawns}}- {{.Kind}}: {{.Count}}
{{end}}
### Clears per Lock
{{range .Clears}}- {{.Lines}} lines: {{.Count}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
