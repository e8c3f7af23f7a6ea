// SPDX-License-Identifier: Unlicense OR MIT

package geometry

import (
	"fmt"
	"strings"
)

// Fit scales a source size into bounds.
type Fit uint8

const (
	// Unscaled does not alter the size.
	Unscaled Fit = iota
	// Contain scales as large as possible without cropping
	// and preserves aspect-ratio.
	Contain
	// Cover scales to cover the bounds and preserves aspect-ratio.
	Cover
	// ScaleDown scales smaller without cropping when the size
	// exceeds the bounds. It preserves aspect-ratio.
	ScaleDown
	// Fill stretches to the bounds and does not preserve aspect-ratio.
	Fill
)

var fitNames = [...]string{
	Unscaled:  "unscaled",
	Contain:   "contain",
	Cover:     "cover",
	ScaleDown: "scaledown",
	Fill:      "fill",
}

// ParseFit returns the Fit named s, ignoring case.
func ParseFit(s string) (Fit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range fitNames {
		if name == s {
			return Fit(f), nil
		}
	}
	return 0, fmt.Errorf("geometry: unknown fit %q", s)
}

func (fit Fit) String() string {
	if int(fit) < len(fitNames) {
		return fitNames[fit]
	}
	return fmt.Sprintf("Fit(%d)", uint8(fit))
}

// Scale returns the size of src after fitting it into bounds.
func (fit Fit) Scale(src, bounds Size) Size {
	if fit == Unscaled || src.Width == 0 || src.Height == 0 {
		return src
	}

	sx := bounds.Width / src.Width
	sy := bounds.Height / src.Height

	switch fit {
	case Contain:
		sx = min(sx, sy)
		sy = sx
	case Cover:
		sx = max(sx, sy)
		sy = sx
	case ScaleDown:
		sx = min(sx, sy)
		// The source would need to be scaled up, no change needed.
		if sx >= 1 {
			return src
		}
		sy = sx
	case Fill:
	}

	return Size{Width: src.Width * sx, Height: src.Height * sy}
}
