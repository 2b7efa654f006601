package foilmesh

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// quarterCircle returns n irregularly spaced points on the unit quarter circle.
func quarterCircle(n int) []r2.Vec {
	pts := make([]r2.Vec, n)
	for i := range pts {
		f := float64(i) / float64(n-1)
		theta := math.Pi / 2 * f * f
		pts[i] = r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return pts
}

func TestCurveInterpolates(t *testing.T) {
	pts := quarterCircle(12)
	for _, p := range []Parameterization{Uniform, Chord, Centripetal, ArcLength} {
		c, err := NewCurve(pts, p)
		if err != nil {
			t.Fatal(err)
		}
		got := c.Eval(c.Params())
		diff(t, pts, got, approx(1e-10))
		lo, hi := c.Domain()
		if lo != 0 {
			t.Errorf("%s: domain starts at %g", p, lo)
		}
		if p != ArcLength && hi != 1 {
			t.Errorf("%s: domain ends at %g, want 1", p, hi)
		}
	}
}

func TestCurveReparameterize(t *testing.T) {
	c, err := NewCurve(quarterCircle(10), Uniform)
	if err != nil {
		t.Fatal(err)
	}
	samples := c.Eval([]float64{0, 0.1, 0.15, 0.3, 0.5, 0.55, 0.8, 1})
	second, err := NewCurve(samples, ArcLength)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, samples, second.Eval(second.Params()), approx(1e-10))
	diff(t, samples, second.Points())
}

func TestCurveLength(t *testing.T) {
	t.Run("line", func(t *testing.T) {
		// Cubic splines reproduce straight lines exactly.
		pts := []r2.Vec{{X: 0, Y: 0}, {X: 0.1, Y: 0.05}, {X: 0.5, Y: 0.25}, {X: 0.6, Y: 0.3}, {X: 2, Y: 1}}
		c, err := NewCurve(pts, ArcLength)
		if err != nil {
			t.Fatal(err)
		}
		want := math.Hypot(2, 1)
		if got := c.Length(); math.Abs(got-want) > 1e-12 {
			t.Errorf("length %g, want %g", got, want)
		}
		if _, hi := c.Domain(); math.Abs(hi-want) > 1e-12 {
			t.Errorf("arc length domain ends at %g, want %g", hi, want)
		}
	})
	t.Run("circle", func(t *testing.T) {
		c, err := NewCurve(quarterCircle(40), Chord)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Length(); math.Abs(got-math.Pi/2) > 1e-4 {
			t.Errorf("length %g, want %g", got, math.Pi/2)
		}
	})
}

func TestCurveClampsAndTangent(t *testing.T) {
	pts := line(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 1}, 5)
	c, err := NewCurve(pts, Uniform)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pts[0], c.At(-1))
	diff(t, pts[4], c.At(2))
	diff(t, r2.Vec{X: 1, Y: 1}, c.Tangent(0.3), approx(1e-12))
}

func TestCurveDegenerate(t *testing.T) {
	for _, test := range []struct {
		name      string
		pts       []r2.Vec
		wantIndex int
	}{
		{name: "too few", pts: []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, wantIndex: -1},
		{name: "coincident", pts: []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, wantIndex: 2},
		{name: "nan", pts: []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: math.NaN()}, {X: 2, Y: 0}, {X: 3, Y: 0}}, wantIndex: 1},
	} {
		_, err := NewCurve(test.pts, Chord)
		var dce *DegenerateCurveError
		if !errors.As(err, &dce) {
			t.Fatalf("%s: error = %v, want DegenerateCurveError", test.name, err)
		}
		if dce.Index != test.wantIndex {
			t.Errorf("%s: index %d, want %d", test.name, dce.Index, test.wantIndex)
		}
	}
	pts := quarterCircle(5)
	if _, err := NewCurveParams(pts, []float64{0, 1, 1, 2, 3}); err == nil {
		t.Error("expected error for repeated parameter values")
	}
	if _, err := NewCurveParams(pts, []float64{0, 1, 2}); err == nil {
		t.Error("expected error for parameter count mismatch")
	}
}

func TestParseParameterization(t *testing.T) {
	for _, p := range []Parameterization{Uniform, Chord, Centripetal, ArcLength} {
		got, err := ParseParameterization(p.String())
		if err != nil || got != p {
			t.Errorf("ParseParameterization(%q) = %v, %v", p.String(), got, err)
		}
	}
	if got, _ := ParseParameterization("index"); got != Uniform {
		t.Errorf("index parses to %v, want uniform", got)
	}
}
