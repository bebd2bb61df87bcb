package field

import (
	"image"
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"pulsefield/internal/colormap"
	"pulsefield/internal/wave"
)

const (
	noiseSpatialScale  = 0.045
	noiseTemporalScale = 0.8
	minBrightness      = 0.5
)

// NoiseSettings shapes the blocks scattered around disintegrating waves.
type NoiseSettings struct {
	StartSize float64
	EndSize   float64
	Count     int
	MaxAlpha  float64
	Spread    float64
}

// Overlay draws translucent coloured blocks in a band around the ring of
// every disintegrating wave. Block placement and brightness come from the
// injected random source; block colour is the colormap at an OpenSimplex
// noise value sampled at the block position and time.
type Overlay struct {
	Colormap       colormap.Colormap
	Settings       NoiseSettings
	Disintegration wave.Disintegration

	rng   *rand.Rand
	noise opensimplex.Noise
}

// NewOverlay seeds both the placement source and the colour noise from
// seed, so equal seeds draw equal blocks for equal inputs.
func NewOverlay(cm colormap.Colormap, s NoiseSettings, d wave.Disintegration, seed int64) *Overlay {
	return &Overlay{
		Colormap:       cm,
		Settings:       s,
		Disintegration: d,
		rng:            rand.New(rand.NewSource(seed)),
		noise:          opensimplex.New(seed),
	}
}

// Envelope is the overall opacity of a wave's noise: it rises linearly over
// the transition and falls linearly to zero over the persistence window.
func (o *Overlay) Envelope(st wave.State) float64 {
	if !st.Disintegrating || st.SinceTrigger < 0 {
		return 0
	}
	transition := o.Disintegration.Transition
	persistence := o.Disintegration.Persistence
	since := st.SinceTrigger
	if since < transition {
		return since / transition
	}
	if persistence <= 0 || since >= transition+persistence {
		return 0
	}
	return 1 - (since-transition)/persistence
}

// BlockSize interpolates the block edge from StartSize to EndSize as
// progress goes from 0 to 1.
func (o *Overlay) BlockSize(progress float64) int {
	s := o.Settings
	size := int(math.Floor(s.StartSize + (s.EndSize-s.StartSize)*clamp(progress, 0, 1)))
	if size < 1 {
		return 1
	}
	return size
}

// Draw blends the noise for every disintegrating wave onto dst in slice
// order and returns the number of blocks drawn. Blocks that would extend
// past the frame are skipped.
func (o *Overlay) Draw(dst *image.RGBA, waves []wave.State, t float64) int {
	b := dst.Bounds()
	width, height := b.Dx(), b.Dy()
	drawn := 0
	for i := range waves {
		st := &waves[i]
		env := o.Envelope(*st)
		if env <= 0 {
			continue
		}
		size := o.BlockSize(st.Progress)
		band := st.GaussianWidth * o.Settings.Spread
		for n := 0; n < o.Settings.Count; n++ {
			angle := o.rng.Float64() * 2 * math.Pi
			r := st.Radius + (o.rng.Float64()-0.5)*band
			brightness := minBrightness + o.rng.Float64()*(1-minBrightness)

			x := st.X + math.Cos(angle)*r
			y := st.Y + math.Sin(angle)*r
			bx := int(math.Floor(x/float64(size))) * size
			by := int(math.Floor(y/float64(size))) * size
			if bx < 0 || by < 0 || bx+size > width || by+size > height {
				continue
			}

			radial := wave.Envelope(r, st.Radius, st.GaussianWidth)
			alpha := math.Min(1, env*radial*o.Settings.MaxAlpha*brightness)
			if alpha <= 0 {
				continue
			}
			v := o.noise.Eval3(float64(bx)*noiseSpatialScale, float64(by)*noiseSpatialScale, t*noiseTemporalScale)
			col := o.Colormap.ColorAt(clamp(v, -1, 1))
			blendRect(dst, b.Min.X+bx, b.Min.Y+by, b.Min.X+bx+size, b.Min.Y+by+size, col, alpha)
			drawn++
		}
	}
	return drawn
}
