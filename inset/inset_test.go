// SPDX-License-Identifier: Unlicense OR MIT

package inset

import (
	"math"
	"testing"
)

func TestValue(t *testing.T) {
	tests := []struct {
		pos  float32
		want int
	}{
		{0.5, 0},
		{1, MaxValue},
		{0, MinValue},
		{0.75, 25},
		{0.25, -25},
		// Half steps round away from zero.
		{0.875, 38},
		{0.125, -38},
		{0.5078125, 1},
		{1.5, MaxValue},
		{-0.25, MinValue},
		{float32(math.Inf(1)), MaxValue},
		{float32(math.Inf(-1)), MinValue},
		{float32(math.NaN()), 0},
	}
	for _, tc := range tests {
		if got := Value(tc.pos); got != tc.want {
			t.Errorf("Value(%v) = %d, want %d", tc.pos, got, tc.want)
		}
	}
}

func TestValueMonotonic(t *testing.T) {
	prev := Value(0)
	for i := 1; i <= 1000; i++ {
		v := Value(float32(i) / 1000)
		if v < prev {
			t.Fatalf("Value(%v) = %d < %d", float32(i)/1000, v, prev)
		}
		if v < MinValue || v > MaxValue {
			t.Fatalf("Value(%v) = %d out of range", float32(i)/1000, v)
		}
		prev = v
	}
}

func TestAggregatorFresh(t *testing.T) {
	a := NewAggregator(nil)
	if got := a.Inset(); got != (Inset{}) {
		t.Errorf("fresh inset = %v, want zero", got)
	}
	for _, e := range Edges {
		if p := a.Position(e); p != Neutral {
			t.Errorf("Position(%v) = %v, want %v", e, p, Neutral)
		}
	}
}

func TestAggregatorUpdate(t *testing.T) {
	type update struct {
		edge Edge
		pos  float32
	}
	tests := []struct {
		name    string
		updates []update
		want    Inset
	}{
		{"top max", []update{{Top, 1}}, Inset{Top: 50}},
		{"left min", []update{{Left, 0}}, Inset{Left: -50}},
		{"top then right", []update{{Top, 0.75}, {Right, 0.25}}, Inset{Top: 25, Right: -25}},
		{"bottom out of range", []update{{Bottom, 1.5}}, Inset{Bottom: 50}},
		{"back to neutral", []update{{Top, 1}, {Top, 0.5}}, Inset{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []Inset
			a := NewAggregator(func(in Inset) { got = append(got, in) })
			for _, u := range tc.updates {
				a.Update(u.edge, u.pos)
			}
			if len(got) != len(tc.updates) {
				t.Fatalf("got %d notifications, want %d", len(got), len(tc.updates))
			}
			if last := got[len(got)-1]; last != tc.want {
				t.Errorf("notified %v, want %v", last, tc.want)
			}
			if cur := a.Inset(); cur != tc.want {
				t.Errorf("Inset() = %v, want %v", cur, tc.want)
			}
		})
	}
}

func TestAggregatorIdempotent(t *testing.T) {
	var got []Inset
	a := NewAggregator(func(in Inset) { got = append(got, in) })
	a.Update(Left, 0.3)
	a.Update(Left, 0.3)
	if len(got) != 2 {
		t.Fatalf("got %d notifications, want 2", len(got))
	}
	if got[0] != got[1] {
		t.Errorf("snapshots differ: %v != %v", got[0], got[1])
	}
}

func TestAggregatorIndependentEdges(t *testing.T) {
	a := NewAggregator(nil)
	a.Update(Bottom, 0.1)
	a.Update(Left, 0.9)
	a.Update(Right, 0.2)
	before := a.Inset()
	a.Update(Top, 1)
	after := a.Inset()
	if after.Bottom != before.Bottom || after.Left != before.Left || after.Right != before.Right {
		t.Errorf("updating top changed other edges: %v -> %v", before, after)
	}
	if after.Top != 50 {
		t.Errorf("top = %d, want 50", after.Top)
	}
}

func TestAggregatorNotificationOrder(t *testing.T) {
	var seen []int
	a := NewAggregator(func(in Inset) { seen = append(seen, in.Right) })
	for i := 0; i <= 10; i++ {
		a.Update(Right, float32(i)/10)
	}
	for i, v := range seen {
		if want := Value(float32(i) / 10); v != want {
			t.Errorf("notification %d carried right=%d, want %d", i, v, want)
		}
	}
}

func TestAggregatorSetOnChange(t *testing.T) {
	var first, second int
	a := NewAggregator(func(Inset) { first++ })
	a.Update(Top, 0.6)
	a.SetOnChange(func(Inset) { second++ })
	a.Update(Top, 0.7)
	a.SetOnChange(nil)
	a.Update(Top, 0.8)
	if first != 1 || second != 1 {
		t.Errorf("first=%d second=%d, want 1 and 1", first, second)
	}
	if a.Value(Top) != 30 {
		t.Errorf("Value(Top) = %d, want 30", a.Value(Top))
	}
}

func TestAggregatorReset(t *testing.T) {
	var got []Inset
	a := NewAggregator(nil)
	a.Update(Top, 0)
	a.Update(Right, 1)
	a.SetOnChange(func(in Inset) { got = append(got, in) })
	a.Reset()
	if len(got) != 1 || got[0] != (Inset{}) {
		t.Fatalf("Reset notified %v, want one zero inset", got)
	}
	if p := a.Position(Right); p != Neutral {
		t.Errorf("Position(Right) = %v after Reset", p)
	}
}

func TestAggregatorPositionClamped(t *testing.T) {
	a := NewAggregator(nil)
	a.Update(Bottom, 3)
	if p := a.Position(Bottom); p != 1 {
		t.Errorf("Position(Bottom) = %v, want 1", p)
	}
	a.Update(Top, float32(math.NaN()))
	if p := a.Position(Top); p != Neutral {
		t.Errorf("Position(Top) after NaN = %v, want %v", p, Neutral)
	}
	if v := a.Value(Top); v != 0 {
		t.Errorf("Value(Top) after NaN = %v, want 0", v)
	}
}

func TestInvalidEdgePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Update with invalid edge did not panic")
		}
	}()
	NewAggregator(nil).Update(Edge(7), 1)
}

func TestEdgeString(t *testing.T) {
	want := []string{"top", "bottom", "left", "right"}
	for i, e := range Edges {
		if e.String() != want[i] {
			t.Errorf("Edges[%d] = %q, want %q", i, e, want[i])
		}
	}
}
