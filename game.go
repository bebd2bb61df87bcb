package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"pulsefield/internal/log"
	"pulsefield/internal/sim"
)

// Game adapts a Simulation to ebiten's Update/Draw/Layout loop.
type Game struct {
	sim    *sim.Simulation
	logger *log.Logger

	canvas *ebiten.Image

	lastUpdate   time.Time
	playbackRate float64
	scrubbing    bool

	// pendingW/H hold the latest outside size reported by Layout; Update
	// applies it so the frame is only reallocated inside the game loop.
	pendingW, pendingH int

	exportDir string
	debug     bool

	audioCtx    *audio.Context
	audioStream *centerAudioStream
	audioPlayer *audio.Player
}

// newGame wraps s. Audio is started when enableAudio is set; failures there
// are logged and the game runs silent.
func newGame(s *sim.Simulation, logger *log.Logger, enableAudio bool) *Game {
	w, h := s.Size()
	g := &Game{
		sim:          s,
		logger:       logger,
		playbackRate: 1,
		pendingW:     w,
		pendingH:     h,
		exportDir:    *exportDirFlag,
		debug:        *debugFlag,
	}
	if enableAudio {
		g.startAudio()
	}
	return g
}

func (g *Game) startAudio() {
	ctx := audio.NewContext(audioSampleRate)
	g.audioCtx = ctx
	g.audioStream = newCenterAudioStream(g.sim.Config().Visual.MaxAmplitude)
	player, err := ctx.NewPlayer(g.audioStream)
	if err != nil {
		g.logger.Warnf("audio player creation failed: %v", err)
		g.audioStream = nil
		return
	}
	g.audioPlayer = player
	g.audioPlayer.SetBufferSize(audioPlayerBufferLatency)
	g.audioPlayer.Play()
	g.logger.Infof("audio enabled at %d Hz", audioSampleRate)
}

// Update measures the real time since the previous frame, applies input,
// and steps the simulation by that time scaled by the playback rate.
func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / defaultTPS
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now
	// A stalled window (drag, breakpoint) must not fast-forward the field.
	dt = min(dt, maxFrameDelta)

	g.sim.Resize(g.pendingW, g.pendingH)
	g.handleClicks()
	if g.debug {
		g.handleDebugControls()
	}

	g.sim.Step(dt * g.playbackRate)

	if g.audioStream != nil {
		w, h := g.sim.Size()
		g.audioStream.SetSample(g.sim.SampleAt(float64(w)/2, float64(h)/2))
	}
	return nil
}

// exportFrame re-evaluates the current time and writes it to the export dir.
func (g *Game) exportFrame() {
	frame := g.sim.Evaluate()
	path := exportName(g.exportDir, g.sim.Now())
	if err := writeFramePNG(frame, g.sim.Now(), path); err != nil {
		g.logger.Errorf("export failed: %v", err)
		return
	}
	g.logger.Infof("exported %s", path)
}
