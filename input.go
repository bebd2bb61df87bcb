package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pulsefield/internal/log"
)

// handleClicks turns left clicks into waves, or into scrubbing when the
// debug timeline is under the cursor.
func (g *Game) handleClicks() {
	x, y := ebiten.CursorPosition()
	if g.scrubbing {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.scrubbing = false
			return
		}
		g.seekTimeline(x)
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	w, h := g.sim.Size()
	if g.debug && timelineFor(w, h).contains(x, y) {
		g.scrubbing = true
		g.seekTimeline(x)
		return
	}
	if g.sim.Click(float64(x), float64(y)) {
		g.logger.Debugf("click at (%d, %d) t=%.3f", x, y, g.sim.Now())
	}
}

func (g *Game) seekTimeline(x int) {
	w, h := g.sim.Size()
	g.sim.Seek(timelineFor(w, h).timeAt(x, g.sim.Span()))
}

// handleDebugControls processes debug hotkeys.
func (g *Game) handleDebugControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.logger.Debugf("clock %s", g.sim.TogglePause())
	}

	step := scrubStep
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step *= scrubShiftMultiplier
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.sim.Scrub(-step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.sim.Scrub(step)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustPlaybackRate(-playbackRateStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustPlaybackRate(playbackRateStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.exportFrame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
		g.logger.Infof("reset to t=0")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		level := nextLogLevel(g.logger.Level())
		g.logger.SetLevel(level)
		// Printed directly so the change is visible even at NONE.
		fmt.Fprintf(os.Stderr, "log level %s\n", level)
	}
}

// nextLogLevel cycles DEBUG -> INFO -> WARN -> ERROR -> NONE -> DEBUG.
func nextLogLevel(l log.Level) log.Level {
	if l >= log.LevelNone {
		return log.LevelDebug
	}
	return l + 1
}

// adjustPlaybackRate clamps the playback rate delta within bounds.
func (g *Game) adjustPlaybackRate(delta float64) {
	g.playbackRate += delta
	if g.playbackRate < minPlaybackRate {
		g.playbackRate = minPlaybackRate
	} else if g.playbackRate > maxPlaybackRate {
		g.playbackRate = maxPlaybackRate
	}
}
