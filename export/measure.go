// SPDX-License-Identifier: Unlicense OR MIT

package export

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"

	"github.com/clydehsieh/buttoninsets/geometry"
)

var (
	titleFontOnce sync.Once
	titleFont     *truetype.Font
	titleFontErr  error
)

// MeasureTitle returns the size of title set in Go Medium at size
// points, one point per dp. It is used when no window is available to
// measure with the UI shaper, so the result is close to, but not
// exactly, the on-screen size.
func MeasureTitle(title string, size float64) (geometry.Size, error) {
	titleFontOnce.Do(func() {
		titleFont, titleFontErr = truetype.Parse(gomedium.TTF)
	})
	if titleFontErr != nil {
		return geometry.Size{}, fmt.Errorf("parse title font: %w", titleFontErr)
	}
	face := truetype.NewFace(titleFont, &truetype.Options{Size: size, DPI: 72})
	defer face.Close()

	m := face.Metrics()
	return geometry.Size{
		Width:  float32(font.MeasureString(face, title).Ceil()),
		Height: float32((m.Ascent + m.Descent).Ceil()),
	}, nil
}
