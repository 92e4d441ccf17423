package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/loop"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Wall-clock time to keep the soak running.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for piece selection and bot input.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Simulated time per frame.")
	actions := flag.Float64("actions", 8, "Bot commands per simulated second.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Printf("Starting soak with seed %d...\n", *seed)

	scheduler := loop.NewScheduler()
	session := tetris.NewSession(tetris.Config{
		Scheduler: scheduler,
		Rand:      rand.New(rand.NewPCG(*seed, 1)),
	})
	scheduler.Bind(session)

	bot := &BotSystem{
		Session: session,
		Rand:    rand.New(rand.NewPCG(*seed, 2)),
		Rate:    *actions,
	}
	scheduler.Register(bot)

	session.Start()

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Frame:          *frame,
		Actions:        *actions,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: FrameStats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(*frame)
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	report.Scheduler = scheduler.GetStats()
	report.Game = session.Stats()
	report.Restarts = bot.restarts
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
