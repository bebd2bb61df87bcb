package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	timelineBack    = color.RGBA{40, 40, 48, 200}
	timelineFill    = color.RGBA{90, 110, 160, 220}
	timelinePlay    = color.RGBA{255, 255, 255, 255}
	timelineOrigins = color.RGBA{255, 200, 80, 255}
)

// Draw blits the last evaluated frame and, in debug mode, the tooling on top.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.sim.Frame()
	fw, fh := frame.Rect.Dx(), frame.Rect.Dy()
	if g.canvas == nil || g.canvas.Bounds().Dx() != fw || g.canvas.Bounds().Dy() != fh {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(fw, fh)
	}
	g.canvas.WritePixels(frame.Pix)
	screen.DrawImage(g.canvas, nil)

	if !g.debug {
		return
	}
	drawOriginMarkers(screen, g.sim.Active())
	g.drawTimeline(screen)

	st := g.sim.Stats()
	msg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nt = %.3f s [%s] rate %.2fx (+/-)\nwaves: %d active, %d disintegrating, %d history\nnoise blocks: %d\nrender: %.2f ms",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		st.Time, g.sim.State(), g.playbackRate,
		st.Active, st.Disintegrating, st.History,
		st.NoiseBlocks,
		st.RenderTime.Seconds()*1000)
	ebitenutil.DebugPrint(screen, msg)
}

// drawTimeline renders the scrub bar with the playhead and a tick per wave
// creation time.
func (g *Game) drawTimeline(screen *ebiten.Image) {
	b := screen.Bounds()
	r := timelineFor(b.Dx(), b.Dy())
	span := g.sim.Span()

	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), timelineBack, false)
	head := r.xAt(g.sim.Now(), span)
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(head-r.x), float32(r.h), timelineFill, false)

	for _, w := range g.sim.History() {
		x := float32(r.xAt(w.CreatedAt, span))
		vector.StrokeLine(screen, x, float32(r.y), x, float32(r.y+r.h/2), 1, timelineOrigins, false)
	}
	vector.StrokeLine(screen, float32(head), float32(r.y-2), float32(head), float32(r.y+r.h+2), 2, timelinePlay, false)
}

// Layout accepts the window size as the canvas size; Update applies it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
