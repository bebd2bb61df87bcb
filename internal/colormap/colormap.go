// Package colormap maps normalized field values to colours through a
// piecewise-linear gradient of ordered stops.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalid is returned by Validate for unusable colormaps.
var ErrInvalid = errors.New("invalid colormap")

// Stop is one keyframe of a colormap.
type Stop struct {
	Pos     float64
	R, G, B uint8
}

// RGBA returns the stop colour as an opaque color.RGBA.
func (s Stop) RGBA() color.RGBA {
	return color.RGBA{R: s.R, G: s.G, B: s.B, A: 255}
}

// Colormap is a gradient over stops sorted by position. Stops are used in
// the given order and are never re-sorted.
type Colormap []Stop

// Validate reports whether the colormap has at least two stops with
// non-decreasing positions inside [0, 1].
func (c Colormap) Validate() error {
	if len(c) < 2 {
		return fmt.Errorf("%w: %d stops, need at least 2", ErrInvalid, len(c))
	}
	for i, s := range c {
		if math.IsNaN(s.Pos) || s.Pos < 0 || s.Pos > 1 {
			return fmt.Errorf("%w: stop %d position %v outside [0,1]", ErrInvalid, i, s.Pos)
		}
		if i > 0 && s.Pos < c[i-1].Pos {
			return fmt.Errorf("%w: stop %d position %v before %v", ErrInvalid, i, s.Pos, c[i-1].Pos)
		}
	}
	return nil
}

// ColorAt maps v in [-1, 1] to a colour. Callers clamp v first; values
// outside the range resolve to the end stops.
func (c Colormap) ColorAt(v float64) color.RGBA {
	if len(c) == 0 {
		return color.RGBA{A: 255}
	}
	pos := (v + 1) / 2
	first, last := c[0], c[len(c)-1]
	if pos <= first.Pos || math.IsNaN(pos) {
		return first.RGBA()
	}
	if pos >= last.Pos {
		return last.RGBA()
	}
	for i := 0; i < len(c)-1; i++ {
		s1, s2 := c[i], c[i+1]
		if pos < s1.Pos || pos > s2.Pos {
			continue
		}
		span := s2.Pos - s1.Pos
		if span == 0 {
			return s1.RGBA()
		}
		t := (pos - s1.Pos) / span
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return s1.RGBA()
		}
		return color.RGBA{
			R: lerp(s1.R, s2.R, t),
			G: lerp(s1.G, s2.G, t),
			B: lerp(s1.B, s2.B, t),
			A: 255,
		}
	}
	return last.RGBA()
}

func lerp(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a)*(1-t) + float64(b)*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
