// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/clydehsieh/buttoninsets/geometry"
	"github.com/clydehsieh/buttoninsets/inset"
	"github.com/clydehsieh/buttoninsets/internal/logger"
)

// Page shows the button above one slider group per Slot. Every slider
// change is applied to the button and the resulting geometry logged.
type Page struct {
	Button *Button

	groups [len(Slots)]*InsetSliders
	list   widget.List
	log    *logger.Logger
}

func NewPage(btn *Button, log *logger.Logger) *Page {
	p := &Page{Button: btn, log: log}
	p.list.Axis = layout.Vertical
	for _, slot := range Slots {
		agg := inset.NewAggregator(p.observe(btn.Target(slot)))
		p.groups[slot] = NewInsetSliders(slot.String(), agg)
	}
	return p
}

// Group returns the slider group driving slot s.
func (p *Page) Group(s Slot) *InsetSliders {
	return p.groups[s]
}

// Preset moves the sliders of slot s to the positions returned by pos.
// Sliders already at their position are left alone.
func (p *Page) Preset(s Slot, pos func(inset.Edge) float32) {
	g := p.groups[s]
	for _, e := range inset.Edges {
		if v := pos(e); v != g.agg.Position(e) {
			g.Set(e, v)
		}
	}
}

func (p *Page) observe(o geometry.Observer) func(inset.Inset) {
	log := p.log
	if t, ok := o.(*Target); ok {
		log = log.With("slot", t.Slot().String())
	}
	return func(in inset.Inset) {
		o.Apply(in)
		r := geometry.ReadoutOf(o.Frames())
		log.Debug(r.String(),
			"inset", in.String(),
			"titleFrame", r.Title.String(),
			"imageFrame", r.Image.String(),
			"padding", r.Padding,
		)
	}
}

// Update applies pending slider input so the button drawn in the same
// frame already reflects it.
func (p *Page) Update(gtx layout.Context) {
	for _, g := range p.groups {
		g.Update(gtx)
	}
}

func (p *Page) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	p.Update(gtx)
	return material.List(th, &p.list).Layout(gtx, 1+len(p.groups), func(gtx C, i int) D {
		if i == 0 {
			return layout.Inset{Top: 50, Bottom: 40}.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return layout.N.Layout(gtx, func(gtx C) D {
					return p.Button.Layout(gtx, th)
				})
			})
		}
		return layout.Inset{Left: 30, Bottom: 30}.Layout(gtx, func(gtx C) D {
			w := gtx.Constraints.Max.X * 7 / 10
			gtx.Constraints.Min.X, gtx.Constraints.Max.X = w, w
			return p.groups[i-1].Layout(gtx, th)
		})
	})
}
