package d3

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBoxInclude(t *testing.T) {
	bb := Box{}
	for _, v := range []r3.Vec{{X: 1, Y: -1}, {Z: 2}, {X: -0.5, Y: 3, Z: 1}} {
		bb = bb.Include(v)
	}
	want := Box{Min: r3.Vec{X: -0.5, Y: -1}, Max: r3.Vec{X: 1, Y: 3, Z: 2}}
	if !EqualWithin(bb.Min, want.Min, 0) || !EqualWithin(bb.Max, want.Max, 0) {
		t.Errorf("got %v, want %v", bb, want)
	}
}
