// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"strconv"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/clydehsieh/buttoninsets/inset"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const labelSize = unit.Sp(12)

// InsetSliders is a titled group with one slider per edge. Slider
// changes are forwarded to an Aggregator.
type InsetSliders struct {
	Title string

	agg    *inset.Aggregator
	floats [len(inset.Edges)]widget.Float
	reset  widget.Clickable
}

// NewInsetSliders returns a group driving agg. The sliders start at
// agg's current positions.
func NewInsetSliders(title string, agg *inset.Aggregator) *InsetSliders {
	s := &InsetSliders{Title: title, agg: agg}
	s.sync()
	return s
}

// Aggregator returns the aggregator the sliders drive.
func (s *InsetSliders) Aggregator() *inset.Aggregator {
	return s.agg
}

// Set moves edge e to pos as if its slider had been dragged there.
func (s *InsetSliders) Set(e inset.Edge, pos float32) {
	s.agg.Update(e, pos)
	s.floats[e].Value = s.agg.Position(e)
}

// Reset moves every slider back to the neutral position.
func (s *InsetSliders) Reset() {
	s.agg.Reset()
	s.sync()
}

// Update processes slider and button events.
func (s *InsetSliders) Update(gtx layout.Context) {
	for _, e := range inset.Edges {
		if s.floats[e].Update(gtx) {
			s.agg.Update(e, s.floats[e].Value)
		}
	}
	if s.reset.Clicked(gtx) {
		s.Reset()
	}
}

func (s *InsetSliders) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	s.Update(gtx)

	children := make([]layout.FlexChild, 0, 1+len(inset.Edges))
	children = append(children, layout.Rigid(func(gtx C) D {
		return s.layoutHeader(gtx, th)
	}))
	for _, e := range inset.Edges {
		e := e
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.Inset{Top: 10}.Layout(gtx, func(gtx C) D {
				return s.layoutRow(gtx, th, e)
			})
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (s *InsetSliders) layoutHeader(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			l := material.Label(th, labelSize, s.Title)
			l.Color = ColorLabel
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			btn := material.Button(th, &s.reset, "Reset")
			btn.TextSize = labelSize
			btn.Inset = layout.Inset{Top: 4, Bottom: 4, Left: 8, Right: 8}
			return btn.Layout(gtx)
		}),
	)
}

func (s *InsetSliders) layoutRow(gtx layout.Context, th *material.Theme, e inset.Edge) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Dp(50)
			l := material.Label(th, labelSize, e.String())
			l.Color = ColorLabel
			return l.Layout(gtx)
		}),
		layout.Flexed(1, func(gtx C) D {
			return layout.Inset{Left: 5, Right: 5}.Layout(gtx,
				material.Slider(th, &s.floats[e]).Layout)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Dp(30)
			l := material.Label(th, labelSize, strconv.Itoa(s.agg.Value(e)))
			l.Color = ColorLabel
			return l.Layout(gtx)
		}),
	)
}

// sync copies the aggregator's positions to the sliders.
func (s *InsetSliders) sync() {
	for _, e := range inset.Edges {
		s.floats[e].Value = s.agg.Position(e)
	}
}
