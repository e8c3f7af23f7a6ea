// SPDX-License-Identifier: Unlicense OR MIT

// Package icon loads and resizes the image shown inside the button.
package icon

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/clydehsieh/buttoninsets/geometry"
)

// Load decodes the image file at path. PNG, JPEG, GIF, BMP and WebP
// are supported.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// Resize scales src to fit a w×h pixel box according to fit. The
// result has the fitted size, not the box size.
func Resize(src image.Image, w, h int, fit geometry.Fit) *image.NRGBA {
	b := src.Bounds()
	size := fit.Scale(
		geometry.Size{Width: float32(b.Dx()), Height: float32(b.Dy())},
		geometry.Size{Width: float32(w), Height: float32(h)},
	)
	dw := max(int(math.Round(float64(size.Width))), 1)
	dh := max(int(math.Round(float64(size.Height))), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// Default returns the built-in indicator: a white material chevron on a
// transparent square.
func Default() image.Image {
	const size = 48
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	m, err := iconvg.DecodeMetadata(icons.NavigationChevronRight)
	if err != nil {
		panic(fmt.Errorf("icon: decode default: %w", err))
	}
	var z iconvg.Rasterizer
	z.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if err := iconvg.Decode(&z, icons.NavigationChevronRight, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	}); err != nil {
		panic(fmt.Errorf("icon: rasterize default: %w", err))
	}
	return img
}
