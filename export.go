package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// writeFramePNG copies frame, stamps the simulation time in the lower-left
// corner and saves it as a PNG at path.
func writeFramePNG(frame *image.RGBA, t float64, path string) error {
	img := image.NewRGBA(frame.Rect)
	copy(img.Pix, frame.Pix)

	dc := gg.NewContextForRGBA(img)
	label := fmt.Sprintf("t = %.3f s", t)
	y := float64(img.Rect.Dy()) - 6
	dc.SetRGB(0, 0, 0)
	dc.DrawString(label, 7, y+1)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(label, 6, y)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export dir: %w", err)
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// exportName is the file name used for interactive exports.
func exportName(dir string, t float64) string {
	return filepath.Join(dir, fmt.Sprintf("pulsefield-t%09.3f.png", t))
}
