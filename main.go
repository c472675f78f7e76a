package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/taiga/config"
	"github.com/pthm-cable/taiga/sim"
	"github.com/pthm-cable/taiga/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	ticks := flag.Int("ticks", 0, "Run length in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV telemetry and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	runTicks := *ticks
	if runTicks <= 0 {
		runTicks = cfg.Run.Ticks
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to set up output", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	m := sim.New(cfg, rngSeed)

	start := m.Snapshot()
	slog.Info("starting simulation",
		"seed", rngSeed,
		"ticks", runTicks,
		"sheep", start.Sheep,
		"bears", start.Bears,
		"cowards", start.Cowards,
		"aggressive", start.Aggressive,
	)

	for i := 0; i < runTicks; i++ {
		m.Step()

		rec := m.Collector().Flush(m.Snapshot())
		if err := out.WriteTelemetry(rec); err != nil {
			slog.Error("failed to write telemetry", "error", err)
			os.Exit(1)
		}

		if cfg.Run.LogInterval > 0 && m.Tick()%cfg.Run.LogInterval == 0 {
			slog.Info("progress",
				"tick", rec.Tick,
				"sheep", rec.Sheep,
				"bears", rec.Bears,
				"cowards", rec.Cowards,
				"aggressive", rec.Aggressive,
				"cubs", rec.Cubs,
			)
		}
	}

	final := m.Snapshot()
	slog.Info("simulation finished",
		"tick", final.Tick,
		"sheep", final.Sheep,
		"bears", final.Bears,
		"cowards", final.Cowards,
		"aggressive", final.Aggressive,
		"avg_coward_level", final.AvgCowardLevel,
		"avg_aggressive_level", final.AvgAggressiveLevel,
	)
}
