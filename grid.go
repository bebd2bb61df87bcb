package main

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// timelineRect is the scrub bar along the bottom of a width x height screen.
type timelineRect struct {
	x, y, w, h int
}

func timelineFor(width, height int) timelineRect {
	return timelineRect{
		x: timelineMargin,
		y: height - timelineMargin - timelineHeight,
		w: max(1, width-2*timelineMargin),
		h: timelineHeight,
	}
}

// contains reports whether the screen point lies on the bar, with a few
// pixels of slack above and below.
func (r timelineRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y-timelineMargin && y < r.y+r.h+timelineMargin
}

// timeAt maps a screen x onto [0, span].
func (r timelineRect) timeAt(x int, span float64) float64 {
	x = clampCoord(x-r.x, 0, r.w)
	return span * float64(x) / float64(r.w)
}

// xAt maps a time in [0, span] onto the bar.
func (r timelineRect) xAt(t, span float64) int {
	if span <= 0 {
		return r.x
	}
	return r.x + clampCoord(int(t/span*float64(r.w)), 0, r.w)
}
