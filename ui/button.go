// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"fmt"
	"image"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/clydehsieh/buttoninsets/geometry"
	"github.com/clydehsieh/buttoninsets/inset"
)

// Slot selects which of the button's insets a Target drives.
type Slot uint8

const (
	ImageSlot Slot = iota
	TitleSlot
	ContentSlot
)

// Slots lists every Slot in display order.
var Slots = [...]Slot{ImageSlot, TitleSlot, ContentSlot}

func (s Slot) String() string {
	switch s {
	case ImageSlot:
		return "imageInset"
	case TitleSlot:
		return "titleInset"
	case ContentSlot:
		return "contentInset"
	}
	return fmt.Sprintf("Slot(%d)", uint8(s))
}

// Button draws an image and a title side by side on a filled
// background, placed by geometry.Layout. The image and title are
// backed by solid colors so their frames are visible.
type Button struct {
	Title    string
	TextSize unit.Sp
	// Size is the size of the button in dp.
	Size geometry.Size

	img       paint.ImageOp
	imageSize geometry.Size
	insets    [len(Slots)]inset.Inset
	// titleSize is the natural title size from the last Measure or Layout.
	titleSize geometry.Size
	// painted holds the frames drawn by the last Layout.
	painted geometry.Frames
}

// Target applies insets to one slot of a Button.
type Target struct {
	button *Button
	slot   Slot
}

var _ geometry.Observer = (*Target)(nil)

// maxTitle bounds the title measurement in pixels.
const maxTitle = 1 << 16

// NewButton returns a button showing img in an imageSize box.
func NewButton(title string, textSize unit.Sp, size geometry.Size, img image.Image, imageSize geometry.Size) *Button {
	b := &Button{
		Title:    title,
		TextSize: textSize,
		Size:     size,
	}
	b.SetImage(img, imageSize)
	return b
}

// SetImage replaces the image and the size of its frame. A nil img
// leaves the frame empty.
func (b *Button) SetImage(img image.Image, size geometry.Size) {
	b.img = paint.ImageOp{}
	if img != nil {
		b.img = paint.NewImageOp(img)
	}
	b.imageSize = size
}

// Inset returns the inset currently applied to slot s.
func (b *Button) Inset(s Slot) inset.Inset {
	return b.insets[s]
}

// Target returns the observer that applies insets to slot s.
func (b *Button) Target(s Slot) *Target {
	if int(s) >= len(b.insets) {
		panic(fmt.Errorf("ui: invalid slot %d", uint8(s)))
	}
	return &Target{button: b, slot: s}
}

// Spec returns the layout input for the current state of b.
func (b *Button) Spec() geometry.Spec {
	return geometry.Spec{
		Size:      b.Size,
		ImageSize: b.imageSize,
		TitleSize: b.titleSize,
		Image:     b.insets[ImageSlot],
		Title:     b.insets[TitleSlot],
		Content:   b.insets[ContentSlot],
	}
}

// Frames lays out b with its current insets. Until Measure or Layout
// has run the title size is unknown and treated as empty.
func (b *Button) Frames() geometry.Frames {
	return geometry.Layout(b.Spec())
}

// Measure records the natural size of the title without drawing it.
// Layout measures on every frame; Measure lets Frames report the real
// title size before the first one.
func (b *Button) Measure(gtx layout.Context, th *material.Theme) {
	b.measure(gtx, b.label(th))
}

func (b *Button) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	lbl := b.label(th)
	b.measure(gtx, lbl)

	f := b.Frames()
	b.painted = f
	bounds := pxRect(gtx, f.Bounds)
	paint.FillShape(gtx.Ops, ColorButton, clip.Rect(bounds).Op())

	img := pxRect(gtx, f.Image)
	paint.FillShape(gtx.Ops, ColorImage, clip.Rect(img).Op())
	if b.img.Size() != (image.Point{}) {
		layoutAt(gtx, img, widget.Image{Src: b.img, Fit: widget.Contain, Position: layout.Center}.Layout)
	}

	title := pxRect(gtx, f.Title)
	paint.FillShape(gtx.Ops, ColorTitleBackground, clip.Rect(title).Op())
	layoutAt(gtx, title, lbl.Layout)

	return layout.Dimensions{Size: bounds.Size()}
}

func (b *Button) label(th *material.Theme) material.LabelStyle {
	lbl := material.Label(th, b.TextSize, b.Title)
	lbl.Color = ColorTitle
	lbl.Font.Weight = font.SemiBold
	lbl.Alignment = text.Middle
	lbl.MaxLines = 1
	return lbl
}

func (b *Button) measure(gtx layout.Context, lbl material.LabelStyle) {
	macro := op.Record(gtx.Ops)
	gtx.Constraints = layout.Constraints{Max: image.Pt(maxTitle, maxTitle)}
	dims := lbl.Layout(gtx)
	macro.Stop()
	b.titleSize = geometry.Size{
		Width:  float32(gtx.Metric.PxToDp(dims.Size.X)),
		Height: float32(gtx.Metric.PxToDp(dims.Size.Y)),
	}
}

// Slot reports which inset t applies.
func (t *Target) Slot() Slot {
	return t.slot
}

// Apply sets the inset of t's slot. The new frames are visible through
// Frames immediately and on screen at the next frame.
func (t *Target) Apply(in inset.Inset) {
	t.button.insets[t.slot] = in
}

func (t *Target) Frames() geometry.Frames {
	return t.button.Frames()
}

// layoutAt lays out w with exact constraints covering r.
func layoutAt(gtx layout.Context, r image.Rectangle, w layout.Widget) {
	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	defer clip.Rect{Max: r.Size()}.Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())
	w(gtx)
}

func pxRect(gtx layout.Context, r geometry.Rect) image.Rectangle {
	return image.Rect(
		gtx.Dp(unit.Dp(r.MinX())), gtx.Dp(unit.Dp(r.MinY())),
		gtx.Dp(unit.Dp(r.MaxX())), gtx.Dp(unit.Dp(r.MaxY())),
	)
}
