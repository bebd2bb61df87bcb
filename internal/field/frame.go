package field

import (
	"image"
	"image/color"
)

// NewFrame allocates a frame anchored at the origin. Its Pix slice is
// tightly packed (Stride == 4*width), which is the layout
// ebiten.Image.WritePixels expects.
func NewFrame(width, height int) *image.RGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Clear overwrites every pixel of dst with c.
func Clear(dst *image.RGBA, c color.RGBA) {
	pix := dst.Pix
	if len(pix) < 4 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// blendRect composites colour c with opacity alpha over the pixels in
// [x0,x1) x [y0,y1) using source-over on premultiplied storage. The rect
// must lie inside dst.
func blendRect(dst *image.RGBA, x0, y0, x1, y1 int, c color.RGBA, alpha float64) {
	if alpha <= 0 || x0 >= x1 || y0 >= y1 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	sr := float64(c.R) * alpha
	sg := float64(c.G) * alpha
	sb := float64(c.B) * alpha
	sa := 255 * alpha
	inv := 1 - alpha
	for y := y0; y < y1; y++ {
		i := dst.PixOffset(x0, y)
		row := dst.Pix[i : i+(x1-x0)*4 : i+(x1-x0)*4]
		for j := 0; j < len(row); j += 4 {
			row[j] = uint8(sr + float64(row[j])*inv + 0.5)
			row[j+1] = uint8(sg + float64(row[j+1])*inv + 0.5)
			row[j+2] = uint8(sb + float64(row[j+2])*inv + 0.5)
			row[j+3] = uint8(sa + float64(row[j+3])*inv + 0.5)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
