package colormap

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/crazy3lf/colorconv"
)

const spectrumStops = 9

// Diverging runs blue through white to red.
func Diverging() Colormap {
	return Colormap{
		{Pos: 0, R: 30, G: 60, B: 200},
		{Pos: 0.25, R: 90, G: 150, B: 240},
		{Pos: 0.5, R: 245, G: 245, B: 245},
		{Pos: 0.75, R: 240, G: 140, B: 80},
		{Pos: 1, R: 190, G: 30, B: 40},
	}
}

// Signed colours by sign only: neg below the midpoint, pos above it. The
// pair of stops at 0.5 share a position, so nothing blends across zero.
func Signed(neg, pos color.RGBA) Colormap {
	return Colormap{
		{Pos: 0, R: neg.R, G: neg.G, B: neg.B},
		{Pos: 0.5, R: neg.R, G: neg.G, B: neg.B},
		{Pos: 0.5, R: pos.R, G: pos.G, B: pos.B},
		{Pos: 1, R: pos.R, G: pos.G, B: pos.B},
	}
}

// Spectrum sweeps hue from blue (negative) to red (positive) at full
// saturation.
func Spectrum() Colormap {
	c := make(Colormap, spectrumStops)
	for i := range c {
		pos := float64(i) / float64(spectrumStops-1)
		hue := 240 * (1 - pos)
		r, g, b, err := colorconv.HSVToRGB(hue, 1, 1)
		if err != nil {
			// hue stays inside [0, 240]
			panic(err)
		}
		c[i] = Stop{Pos: pos, R: r, G: g, B: b}
	}
	return c
}

// Preset resolves a preset name. The signed preset uses neg and pos.
func Preset(name string, neg, pos color.RGBA) (Colormap, error) {
	switch name {
	case "", "diverging":
		return Diverging(), nil
	case "signed", "two-color":
		return Signed(neg, pos), nil
	case "spectrum":
		return Spectrum(), nil
	}
	return nil, fmt.Errorf("%w: unknown preset %q (have %v)", ErrInvalid, name, PresetNames())
}

// PresetNames lists the preset names accepted by Preset.
func PresetNames() []string {
	names := []string{"diverging", "signed", "spectrum"}
	sort.Strings(names)
	return names
}
