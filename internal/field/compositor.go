// Package field rasterizes the active waves into an RGBA frame and draws
// the disintegration noise on top of it.
package field

import (
	"image"
	"image/color"
	"math"

	"pulsefield/internal/colormap"
	"pulsefield/internal/wave"
)

// Compositor evaluates the summed wave field once per square block of
// GridResolution pixels and paints each block with a colormap colour whose
// opacity tracks the field magnitude.
type Compositor struct {
	Colormap       colormap.Colormap
	GridResolution int
	MaxAmplitude   float64
	// EdgeFactor bounds how many Gaussian widths from its ring a wave is
	// still evaluated; it is also the removal margin.
	EdgeFactor float64
	Background color.RGBA
	// Workers is the number of goroutines that share the block rows.
	// Zero uses every CPU.
	Workers int
}

// SampleAt sums the contributions of waves at (x, y). Waves farther than
// sig*EdgeFactor from their ring contribute nothing and are skipped before
// the exp/sin evaluation.
func (c *Compositor) SampleAt(x, y float64, waves []wave.State) float64 {
	total := 0.0
	for i := range waves {
		w := &waves[i]
		amp := w.Amplitude()
		if amp <= 0 {
			continue
		}
		d := math.Hypot(x-w.X, y-w.Y)
		if math.Abs(d-w.Radius) > w.GaussianWidth*c.EdgeFactor {
			continue
		}
		total += amp * wave.Pulse(d, w.CarrierFrequency, w.Radius, w.GaussianWidth)
	}
	return total
}

// Shade converts a summed field value into the block colour and opacity.
// ok is false when the block should be left untouched.
func (c *Compositor) Shade(total float64) (col color.RGBA, alpha float64, ok bool) {
	if total == 0 || math.IsNaN(total) {
		return color.RGBA{}, 0, false
	}
	maxAmp := c.MaxAmplitude
	if maxAmp <= 0 {
		maxAmp = 1
	}
	alpha = clamp(math.Abs(total)/maxAmp, 0, 1)
	return c.Colormap.ColorAt(clamp(total, -1, 1)), alpha, true
}

// Render clears dst to the background and composites the field of waves
// over it.
func (c *Compositor) Render(dst *image.RGBA, waves []wave.State) {
	Clear(dst, c.Background)
	b := dst.Bounds()
	width, height := b.Dx(), b.Dy()
	g := c.GridResolution
	if g < 1 {
		g = 1
	}
	if len(waves) == 0 || width == 0 || height == 0 {
		return
	}
	half := float64(g) / 2
	blockRows := (height + g - 1) / g
	forEachBand(blockRows, c.Workers, func(lo, hi int) {
		for row := lo; row < hi; row++ {
			y0 := row * g
			y1 := min(y0+g, height)
			cy := float64(y0) + half
			for x0 := 0; x0 < width; x0 += g {
				col, alpha, ok := c.Shade(c.SampleAt(float64(x0)+half, cy, waves))
				if !ok {
					continue
				}
				blendRect(dst, b.Min.X+x0, b.Min.Y+y0, b.Min.X+min(x0+g, width), b.Min.Y+y1, col, alpha)
			}
		}
	})
}
