package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	titleBarPadding = 8
	ellipsis        = "..."
)

var (
	titleBarColor = color.RGBA{R: 0x2d, G: 0x2d, B: 0x30, A: 0xff}
	titleColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// RenderTitleBar draws title left-aligned and vertically centered on a
// width x height title bar. Titles that do not fit are cut with "...".
func RenderTitleBar(title string, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: titleBarColor}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	text := fitText(face, title, width-2*titleBarPadding)

	// Baseline that centers the ascent+descent box.
	m := face.Metrics()
	y := (height + m.Ascent.Ceil() - m.Descent.Ceil()) / 2

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(titleColor),
		Face: face,
		Dot:  fixed.P(titleBarPadding, y),
	}
	d.DrawString(text)
	return img, nil
}

// fitText returns s, or the longest prefix of s plus an ellipsis that
// fits in maxWidth pixels.
func fitText(face font.Face, s string, maxWidth int) string {
	if font.MeasureString(face, s).Ceil() <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			return candidate
		}
	}
	return ""
}

// writePNG encodes img to path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("png encode: %w", err)
	}
	return f.Close()
}
