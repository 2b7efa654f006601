package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Finite returns false if any component is NaN or infinite.
func Finite(a r2.Vec) bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}

type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Bounds returns the bounding box of the set.
func (a Set) Bounds() Box {
	return Box{Min: a.Min(), Max: a.Max()}
}

// Reverse returns a reversed copy of the set.
func (a Set) Reverse() Set {
	out := make(Set, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}
	return out
}

// Chords returns the distance between consecutive points of the polyline
// the set describes. The result has len(a)-1 elements.
func (a Set) Chords() []float64 {
	if len(a) < 2 {
		return nil
	}
	c := make([]float64, len(a)-1)
	for i := range c {
		c[i] = Dist(a[i], a[i+1])
	}
	return c
}

// XY splits the set into x and y component slices.
func (a Set) XY() (x, y []float64) {
	x = make([]float64, len(a))
	y = make([]float64, len(a))
	for i, v := range a {
		x[i], y[i] = v.X, v.Y
	}
	return x, y
}
