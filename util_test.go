package foilmesh

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those inside r2.Vec, within tol.
func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

// line returns n evenly spaced points from a to b, both included.
func line(a, b r2.Vec, n int) []r2.Vec {
	xs := floats.Span(make([]float64, n), a.X, b.X)
	ys := floats.Span(make([]float64, n), a.Y, b.Y)
	pts := make([]r2.Vec, n)
	for i := range pts {
		pts[i] = r2.Vec{X: xs[i], Y: ys[i]}
	}
	return pts
}
