// SPDX-License-Identifier: Unlicense OR MIT

/*
Package inset maps normalized slider positions to four-sided insets.

An Aggregator owns one value per Edge. Each Update converts a position in
[0, 1] to an offset in [MinValue, MaxValue], rebuilds the complete Inset and
hands it to the registered callback before returning. Position 0.5 is the
neutral point and maps to a zero offset.
*/
package inset

import (
	"fmt"
	"math"
)

// Edge identifies one side of an Inset.
type Edge uint8

const (
	Top Edge = iota
	Bottom
	Left
	Right
)

// Edges lists every Edge in display order.
var Edges = [...]Edge{Top, Bottom, Left, Right}

// Offset range produced by Value.
const (
	MinValue = -50
	MaxValue = 50
)

// Neutral is the position that maps to a zero offset.
const Neutral = 0.5

// Inset is a four-sided offset. The zero value is no inset.
type Inset struct {
	Top, Bottom, Left, Right int
}

// Aggregator maintains the Inset driven by four independent edge
// positions. It is not safe for concurrent use; updates are expected
// on the goroutine that handles input events.
type Aggregator struct {
	pos      [len(Edges)]float32
	inset    Inset
	onChange func(Inset)
}

// Value converts a normalized position to an edge offset. Positions
// outside [0, 1] are clamped and NaN is treated as Neutral.
func Value(pos float32) int {
	p := float64(pos)
	switch {
	case math.IsNaN(p):
		p = Neutral
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	return int(math.Round((p - Neutral) * (MaxValue - MinValue)))
}

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// Get returns the offset of edge e.
func (in Inset) Get(e Edge) int {
	switch e {
	case Top:
		return in.Top
	case Bottom:
		return in.Bottom
	case Left:
		return in.Left
	case Right:
		return in.Right
	}
	panic(fmt.Errorf("inset: invalid edge %d", uint8(e)))
}

// With returns a copy of in with edge e set to v.
func (in Inset) With(e Edge, v int) Inset {
	switch e {
	case Top:
		in.Top = v
	case Bottom:
		in.Bottom = v
	case Left:
		in.Left = v
	case Right:
		in.Right = v
	default:
		panic(fmt.Errorf("inset: invalid edge %d", uint8(e)))
	}
	return in
}

func (in Inset) String() string {
	return fmt.Sprintf("{top:%d, bottom:%d, left:%d, right:%d}", in.Top, in.Bottom, in.Left, in.Right)
}

// NewAggregator returns an Aggregator with every edge at the neutral
// position. onChange may be nil.
func NewAggregator(onChange func(Inset)) *Aggregator {
	a := &Aggregator{onChange: onChange}
	for i := range a.pos {
		a.pos[i] = Neutral
	}
	return a
}

// SetOnChange replaces the change callback. A nil fn removes it.
func (a *Aggregator) SetOnChange(fn func(Inset)) {
	a.onChange = fn
}

// Update moves edge e to the normalized position pos and notifies the
// callback with the resulting Inset. Every call notifies, even when the
// Inset is unchanged.
func (a *Aggregator) Update(e Edge, pos float32) {
	a.inset = a.inset.With(e, Value(pos))
	a.pos[e] = pos
	a.notify()
}

// Reset moves every edge back to the neutral position and notifies once.
func (a *Aggregator) Reset() {
	for i := range a.pos {
		a.pos[i] = Neutral
	}
	a.inset = Inset{}
	a.notify()
}

// Inset returns the current snapshot.
func (a *Aggregator) Inset() Inset {
	return a.inset
}

// Value returns the current offset of edge e.
func (a *Aggregator) Value(e Edge) int {
	return a.inset.Get(e)
}

// Position returns the last position given for edge e, clamped to [0, 1].
func (a *Aggregator) Position(e Edge) float32 {
	// Get validates e before it is used as an index.
	a.inset.Get(e)
	p := a.pos[e]
	switch {
	case math.IsNaN(float64(p)):
		return Neutral
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func (a *Aggregator) notify() {
	if a.onChange != nil {
		a.onChange(a.inset)
	}
}
