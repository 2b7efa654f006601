package foilmesh

import (
	"github.com/soypat/foilmesh/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// TrailingEdgeBridge returns n points evenly spaced on the segment from a to
// b, both ends included.
func TrailingEdgeBridge(a, b r2.Vec, n int) ([]r2.Vec, error) {
	if n < 2 {
		return nil, &ParameterError{Name: "trailing edge points", Value: float64(n), Reason: "need at least 2"}
	}
	xs := floats.Span(make([]float64, n), a.X, b.X)
	ys := floats.Span(make([]float64, n), a.Y, b.Y)
	out := make([]r2.Vec, n)
	for i := range out {
		out[i] = r2.Vec{X: xs[i], Y: ys[i]}
	}
	return out, nil
}

// Assemble joins refined pressure and suction surfaces, both ordered from
// leading edge to trailing edge, into a single closed loop. The loop runs
// from the SS trailing edge to the leading edge, along PS to its trailing
// edge and across the blunt trailing edge with npTE evenly spaced points
// back towards the SS trailing edge. Points shared by consecutive sections
// appear once, so the result has len(ss)+len(ps)-1+npTE-1 points. The last
// point of the bridge is the SS trailing edge, closing the loop on its
// first point.
func Assemble(ps, ss []r2.Vec, npTE int) ([]r2.Vec, error) {
	if len(ps) < 2 {
		return nil, &ParameterError{Name: "PS points", Value: float64(len(ps)), Reason: "need at least 2"}
	}
	if len(ss) < 2 {
		return nil, &ParameterError{Name: "SS points", Value: float64(len(ss)), Reason: "need at least 2"}
	}
	bridge, err := TrailingEdgeBridge(ps[len(ps)-1], ss[len(ss)-1], npTE)
	if err != nil {
		return nil, err
	}
	loop := make([]r2.Vec, 0, len(ss)+len(ps)-1+npTE-1)
	loop = append(loop, d2.Set(ss).Reverse()...)
	loop = append(loop, ps[1:]...)
	loop = append(loop, bridge[1:]...)
	return loop, nil
}
