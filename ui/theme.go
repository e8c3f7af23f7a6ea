// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/widget/material"
)

var (
	ColorButton          = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
	ColorImage           = color.NRGBA{R: 0xff, A: 0xff}
	ColorTitleBackground = color.NRGBA{B: 0xff, A: 0xff}
	ColorTitle           = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	ColorLabel           = color.NRGBA{A: 0xff}
)

// NewTheme returns a material theme using the embedded Go fonts only,
// so layout is identical on every platform.
func NewTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	return th
}
