// SPDX-License-Identifier: Unlicense OR MIT

package geometry

import (
	"fmt"

	"github.com/clydehsieh/buttoninsets/inset"
)

// Observer applies an inset to a render target and reports the frames
// that result. Observers of different targets are independent.
type Observer interface {
	Apply(in inset.Inset)
	Frames() Frames
}

// Readout is the diagnostic summary of a set of frames.
type Readout struct {
	Title   Rect
	Image   Rect
	Padding float32
}

// ReadoutOf summarizes f.
func ReadoutOf(f Frames) Readout {
	return Readout{Title: f.Title, Image: f.Image, Padding: f.Padding()}
}

func (r Readout) String() string {
	return fmt.Sprintf("titleFrame: %v imageFrame: %v padding: %.1f", r.Title, r.Image, r.Padding)
}
