package foilmesh

import (
	"math"

	"github.com/soypat/foilmesh/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r2"
)

// Parameterization selects how parameter values are assigned to the points
// a Curve interpolates.
type Parameterization uint8

const (
	// Uniform assigns the point index, normalized to [0, 1].
	Uniform Parameterization = iota
	// Chord assigns cumulative chord length normalized to [0, 1].
	Chord
	// Centripetal assigns cumulative square root of chord length normalized to [0, 1].
	Centripetal
	// ArcLength assigns cumulative chord length in physical units.
	ArcLength
)

func (p Parameterization) String() string {
	switch p {
	case Uniform:
		return "uniform"
	case Chord:
		return "chord"
	case Centripetal:
		return "centripetal"
	case ArcLength:
		return "arclength"
	}
	return "parameterization(?)"
}

// number of Gauss-Legendre nodes per knot span used by Length.
const lengthQuadNodes = 16

// Curve is a planar cubic spline passing through every point it was built
// from. Each coordinate is interpolated independently over a shared
// parameter with not-a-knot end conditions.
type Curve struct {
	pts []r2.Vec
	t   []float64
	x   notAKnotCubic
	y   notAKnotCubic
}

// NewCurve interpolates pts with parameter values assigned by p.
func NewCurve(pts []r2.Vec, p Parameterization) (*Curve, error) {
	if err := validateCurvePoints(pts); err != nil {
		return nil, err
	}
	return newCurve(pts, parameterize(pts, p))
}

// NewCurveParams interpolates pts at the given strictly increasing
// parameter values.
func NewCurveParams(pts []r2.Vec, t []float64) (*Curve, error) {
	if err := validateCurvePoints(pts); err != nil {
		return nil, err
	}
	if len(t) != len(pts) {
		return nil, &DegenerateCurveError{Points: len(pts), Index: -1, Reason: "parameter count does not match point count"}
	}
	for i := 1; i < len(t); i++ {
		if !(t[i] > t[i-1]) || !finite(t[i]) {
			return nil, &DegenerateCurveError{Points: len(pts), Index: i, Reason: "parameter values not strictly increasing"}
		}
	}
	return newCurve(pts, append([]float64(nil), t...))
}

func newCurve(pts []r2.Vec, t []float64) (*Curve, error) {
	c := &Curve{
		pts: append([]r2.Vec(nil), pts...),
		t:   t,
	}
	xs, ys := d2.Set(c.pts).XY()
	if err := c.x.Fit(t, xs); err != nil {
		return nil, &DegenerateCurveError{Points: len(pts), Index: -1, Reason: err.Error()}
	}
	if err := c.y.Fit(t, ys); err != nil {
		return nil, &DegenerateCurveError{Points: len(pts), Index: -1, Reason: err.Error()}
	}
	return c, nil
}

func validateCurvePoints(pts []r2.Vec) error {
	if len(pts) < Degree+1 {
		return &DegenerateCurveError{Points: len(pts), Index: -1, Reason: "need at least 4 points for a cubic spline"}
	}
	for i, p := range pts {
		if !d2.Finite(p) {
			return &DegenerateCurveError{Points: len(pts), Index: i, Reason: "non-finite coordinate"}
		}
		if i > 0 && p == pts[i-1] {
			return &DegenerateCurveError{Points: len(pts), Index: i, Reason: "coincides with previous point"}
		}
	}
	return nil
}

// parameterize returns parameter values for pts. pts must be free of
// coincident consecutive points.
func parameterize(pts []r2.Vec, p Parameterization) []float64 {
	n := len(pts)
	t := make([]float64, n)
	if p == Uniform {
		floats.Span(t, 0, 1)
		return t
	}
	chords := d2.Set(pts).Chords()
	if p == Centripetal {
		for i := range chords {
			chords[i] = math.Sqrt(chords[i])
		}
	}
	floats.CumSum(t[1:], chords)
	if p == ArcLength {
		return t
	}
	total := t[n-1]
	floats.Scale(1/total, t)
	t[n-1] = 1
	return t
}

// Domain returns the first and last parameter values of the curve.
func (c *Curve) Domain() (lo, hi float64) {
	return c.t[0], c.t[len(c.t)-1]
}

// Params returns a copy of the parameter values assigned to the
// construction points.
func (c *Curve) Params() []float64 {
	return append([]float64(nil), c.t...)
}

// Points returns a copy of the construction points.
func (c *Curve) Points() []r2.Vec {
	return append([]r2.Vec(nil), c.pts...)
}

// At evaluates the curve at t. t is clamped to the curve's domain.
func (c *Curve) At(t float64) r2.Vec {
	lo, hi := c.Domain()
	t = Clamp(t, lo, hi)
	return r2.Vec{X: c.x.Predict(t), Y: c.y.Predict(t)}
}

// Eval evaluates the curve at every value of ts, returning one point per value.
func (c *Curve) Eval(ts []float64) []r2.Vec {
	out := make([]r2.Vec, len(ts))
	for i, t := range ts {
		out[i] = c.At(t)
	}
	return out
}

// Tangent returns the derivative of the curve with respect to its parameter at t.
func (c *Curve) Tangent(t float64) r2.Vec {
	lo, hi := c.Domain()
	t = Clamp(t, lo, hi)
	return r2.Vec{X: c.x.PredictDerivative(t), Y: c.y.PredictDerivative(t)}
}

// Length returns the arc length of the curve over its whole domain.
func (c *Curve) Length() float64 {
	speed := func(t float64) float64 { return r2.Norm(c.Tangent(t)) }
	var l float64
	for i := 1; i < len(c.t); i++ {
		l += quad.Fixed(speed, c.t[i-1], c.t[i], lengthQuadNodes, nil, 0)
	}
	return l
}
