// SPDX-License-Identifier: Unlicense OR MIT

// Package geometry computes the frames of a button's image and title
// from its size, content sizes and the three insets applied to it.
// All lengths are in dp.
package geometry

import (
	"fmt"

	"github.com/clydehsieh/buttoninsets/inset"
)

// Size is a width and height in dp.
type Size struct {
	Width, Height float32
}

// Rect is an axis-aligned rectangle with its origin at the top left.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Spec describes a button to lay out.
type Spec struct {
	// Size is the size of the button bounds.
	Size Size
	// ImageSize and TitleSize are the natural sizes of the content.
	ImageSize Size
	TitleSize Size
	// Content shrinks the bounds before the image and title are placed.
	Content inset.Inset
	// Image and Title shift their element after placement.
	Image inset.Inset
	Title inset.Inset
}

// Frames is the result of Layout, in the button's coordinate space.
type Frames struct {
	Bounds  Rect
	Content Rect
	Image   Rect
	Title   Rect
}

// Layout places the image and title of s. The pair is laid out side by
// side and centered in the content rectangle; each element is then
// shifted by half the difference of its opposing inset edges.
func Layout(s Spec) Frames {
	bounds := Rect{Width: s.Size.Width, Height: s.Size.Height}
	content := bounds.Shrink(s.Content)

	img := s.ImageSize
	title := s.TitleSize
	// The title gives up width first.
	if avail := content.Width - img.Width; title.Width > avail {
		title.Width = max(avail, 0)
	}

	x := content.X + (content.Width-img.Width-title.Width)/2
	imgRect := Rect{
		X:      x,
		Y:      content.Y + (content.Height-img.Height)/2,
		Width:  img.Width,
		Height: img.Height,
	}
	titleRect := Rect{
		X:      x + img.Width,
		Y:      content.Y + (content.Height-title.Height)/2,
		Width:  title.Width,
		Height: title.Height,
	}

	return Frames{
		Bounds:  bounds,
		Content: content,
		Image:   imgRect.Shift(s.Image),
		Title:   titleRect.Shift(s.Title),
	}
}

// Padding is the horizontal gap from the image's right edge to the
// title's left edge. It is negative when they overlap.
func (f Frames) Padding() float32 {
	return f.Title.MinX() - f.Image.MaxX()
}

// Union returns the smallest rectangle containing every frame.
func (f Frames) Union() Rect {
	return f.Bounds.Union(f.Content).Union(f.Image).Union(f.Title)
}

func (r Rect) MinX() float32 { return r.X }
func (r Rect) MaxX() float32 { return r.X + r.Width }
func (r Rect) MinY() float32 { return r.Y }
func (r Rect) MaxY() float32 { return r.Y + r.Height }

// Shrink insets every edge of r by the matching edge of in. Negative
// edges grow r. The resulting size never goes below zero.
func (r Rect) Shrink(in inset.Inset) Rect {
	r.X += float32(in.Left)
	r.Y += float32(in.Top)
	r.Width = max(r.Width-float32(in.Left+in.Right), 0)
	r.Height = max(r.Height-float32(in.Top+in.Bottom), 0)
	return r
}

// Shift moves r the way a centered element moves inside a rectangle
// shrunk by in.
func (r Rect) Shift(in inset.Inset) Rect {
	r.X += float32(in.Left-in.Right) / 2
	r.Y += float32(in.Top-in.Bottom) / 2
	return r
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	minX, minY := min(r.MinX(), o.MinX()), min(r.MinY(), o.MinY())
	maxX, maxY := max(r.MaxX(), o.MaxX()), max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f, %.1f)", r.X, r.Y, r.Width, r.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("%.1fx%.1f", s.Width, s.Height)
}
