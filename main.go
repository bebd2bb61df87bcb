package main

import (
	"context"
	"flag"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"pulsefield/internal/config"
	"pulsefield/internal/log"
	"pulsefield/internal/sim"
)

func main() {
	flag.Parse()
	runtime.GOMAXPROCS(runtime.NumCPU())
	os.Exit(run())
}

// run owns every deferred cleanup so the CPU profile is flushed on all exit
// paths; main only turns its result into the process status.
func run() int {
	logger := log.New(os.Stderr, log.LevelFromString(*logLevelFlag))

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			logger.Errorf("cpu profile: %v", err)
		} else {
			defer stop()
		}
	}

	cfg := loadConfig(logger)
	s := sim.New(cfg, sim.Options{Seed: *seedFlag, Workers: *workersFlag, Logger: logger})

	if *snapshotFlag != "" {
		frame := s.AdvanceTo(*atFlag, snapshotStep)
		if err := writeFramePNG(frame, s.Now(), *snapshotFlag); err != nil {
			logger.Errorf("snapshot: %v", err)
			return 1
		}
		logger.Infof("wrote %s at t=%.3f (%d active waves)", *snapshotFlag, s.Now(), s.Stats().Active)
		return 0
	}

	g := newGame(s, logger, *enableAudioFlag)
	ebiten.SetWindowSize(cfg.Canvas.Width, cfg.Canvas.Height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(defaultTPS))
	if err := ebiten.RunGame(g); err != nil {
		logger.Errorf("run: %v", err)
		return 1
	}
	return 0
}

// loadConfig reads -config, applies flag overrides and validates the
// result. Problems are logged and the usable configuration is returned.
func loadConfig(logger *log.Logger) config.Config {
	ctx, cancel := context.WithTimeout(context.Background(), configLoadTimeout)
	defer cancel()

	cfg, err := config.Load(ctx, *configFlag)
	if err != nil {
		logger.Warnf("%v; continuing with defaults where needed", err)
	} else if *configFlag != "" {
		logger.Infof("loaded config from %s", *configFlag)
	}

	if *widthFlag > 0 {
		cfg.Canvas.Width = *widthFlag
	}
	if *heightFlag > 0 {
		cfg.Canvas.Height = *heightFlag
	}
	if err := cfg.Validate(); err != nil {
		logger.Warnf("config corrected: %v", err)
	}
	logger.Debugf("config: %+v", cfg)
	return cfg
}
