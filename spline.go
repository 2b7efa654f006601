package foilmesh

import (
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// notAKnotCubic is a C2 cubic interpolating spline whose first two and last
// two spans are each a single cubic. The knot slopes solve a tridiagonal
// system written in first derivatives, so strongly graded knots (spacings
// differing by orders of magnitude) stay well scaled.
type notAKnotCubic struct {
	interp.PiecewiseCubic
}

// Fit fits the spline through (xs, ys). xs must be strictly increasing and
// hold at least 4 values.
func (s *notAKnotCubic) Fit(xs, ys []float64) error {
	n := len(xs)
	dx := make([]float64, n-1)
	m := make([]float64, n-1)
	for i := range dx {
		dx[i] = xs[i+1] - xs[i]
		m[i] = (ys[i+1] - ys[i]) / dx[i]
	}
	var (
		dl = make([]float64, n-1)
		d  = make([]float64, n)
		du = make([]float64, n-1)
		b  = mat.NewVecDense(n, nil)
	)
	// Third derivative continuous at xs[1].
	w := dx[0] + dx[1]
	d[0], du[0] = dx[1], w
	b.SetVec(0, ((dx[0]+2*w)*dx[1]*m[0]+dx[0]*dx[0]*m[1])/w)
	for i := 1; i < n-1; i++ {
		dl[i-1] = dx[i]
		d[i] = 2 * (dx[i-1] + dx[i])
		du[i] = dx[i-1]
		b.SetVec(i, 3*(dx[i]*m[i-1]+dx[i-1]*m[i]))
	}
	// Third derivative continuous at xs[n-2].
	w = dx[n-3] + dx[n-2]
	dl[n-2], d[n-1] = w, dx[n-3]
	b.SetVec(n-1, (dx[n-2]*dx[n-2]*m[n-3]+(2*w+dx[n-2])*dx[n-3]*m[n-2])/w)

	a := mat.NewTridiag(n, dl, d, du)
	slopes := mat.NewVecDense(n, nil)
	if err := a.SolveVecTo(slopes, false, b); err != nil {
		return err
	}
	s.FitWithDerivatives(xs, ys, slopes.RawVector().Data)
	return nil
}
