package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"pulsefield/internal/wave"
)

type gridOffset struct {
	dx int
	dy int
}

// markerFootprint is the one-pixel ring drawn at each wave origin.
var markerFootprint = precomputeMarkerFootprint(markerRadius)

func precomputeMarkerFootprint(radius int) []gridOffset {
	footprint := make([]gridOffset, 0, 8*radius)
	outer := radius * radius
	inner := (radius - 1) * (radius - 1)
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if d := x*x + y*y; d <= outer && d > inner {
				footprint = append(footprint, gridOffset{dx: x, dy: y})
			}
		}
	}
	return footprint
}

var (
	markerActive         = color.RGBA{255, 255, 255, 255}
	markerDisintegrating = color.RGBA{255, 170, 0, 255}
)

// drawOriginMarkers rings the origin of every active wave.
func drawOriginMarkers(screen *ebiten.Image, states []wave.State) {
	b := screen.Bounds()
	for i := range states {
		clr := markerActive
		if states[i].Disintegrating {
			clr = markerDisintegrating
		}
		cx, cy := int(states[i].X), int(states[i].Y)
		for _, o := range markerFootprint {
			x, y := cx+o.dx, cy+o.dy
			if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
				continue
			}
			screen.Set(x, y, clr)
		}
	}
}
