package foilmesh

import "math"

const (
	// tolerance is the relative tolerance used when checking that a
	// distribution closes on the surface length.
	tolerance = 1e-9
	// Degree is the polynomial degree of the interpolating splines.
	Degree = 3
)

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// equalRel reports whether a and b are equal within relative tolerance tol,
// falling back to an absolute comparison near zero.
func equalRel(a, b, tol float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		scale = 1
	}
	return math.Abs(a-b) <= tol*scale
}
