package foilmesh

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// LengthMode selects what BuildDistribution treats as the surface length.
type LengthMode uint8

const (
	// ArcLengthMode measures the arc length of the interpolated raw surface.
	ArcLengthMode LengthMode = iota
	// ChordMode uses the chordwise extent from the LE point to the TE point.
	ChordMode
)

func (m LengthMode) String() string {
	switch m {
	case ArcLengthMode:
		return "arc"
	case ChordMode:
		return "chord"
	}
	return "lengthmode(?)"
}

// ParseLengthMode parses the names returned by LengthMode.String.
func ParseLengthMode(s string) (LengthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arc", "":
		return ArcLengthMode, nil
	case "chord":
		return ChordMode, nil
	}
	return ArcLengthMode, fmt.Errorf("unknown length mode %q", s)
}

// ParseParameterization parses the names returned by Parameterization.String.
func ParseParameterization(s string) (Parameterization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "index", "":
		return Uniform, nil
	case "chord":
		return Chord, nil
	case "centripetal":
		return Centripetal, nil
	case "arclength":
		return ArcLength, nil
	}
	return Uniform, fmt.Errorf("unknown parameterization %q", s)
}

// SurfaceRefiner resamples one raw airfoil surface onto a Distribution.
//
// Refinement runs in two passes. The first pass curve is built over the
// raw points in its native parameter, which does not measure physical
// length since raw points are irregularly spaced. It is sampled at the
// distribution mapped into native units. The second pass rebuilds a curve
// through those samples parameterized by physical chord length and
// samples it again at the same distribution, so the final spacing follows
// the distribution in physical units. Skipping the second pass changes the
// result.
type SurfaceRefiner struct {
	raw   []r2.Vec
	first *Curve
}

// NewSurfaceRefiner builds the first pass curve through raw, ordered from
// leading edge to trailing edge.
func NewSurfaceRefiner(raw []r2.Vec, firstPass Parameterization) (*SurfaceRefiner, error) {
	c, err := NewCurve(raw, firstPass)
	if err != nil {
		return nil, regionError(RegionCurve, err)
	}
	return &SurfaceRefiner{raw: c.Points(), first: c}, nil
}

// Curve returns the first pass curve.
func (r *SurfaceRefiner) Curve() *Curve { return r.first }

// Length returns the surface length as measured by mode.
func (r *SurfaceRefiner) Length(mode LengthMode) float64 {
	if mode == ChordMode {
		return r.raw[len(r.raw)-1].X - r.raw[0].X
	}
	return r.first.Length()
}

// Refine samples the surface at every position of dist. The first and last
// raw points are reproduced exactly.
func (r *SurfaceRefiner) Refine(dist Distribution) ([]r2.Vec, error) {
	length := dist.Length()
	if length <= 0 || dist.Len() < 2 {
		return nil, &ParameterError{Name: "distribution length", Value: length, Reason: "need a positive length and at least 2 positions"}
	}
	lo, hi := r.first.Domain()
	native := make([]float64, dist.Len())
	for i, s := range dist.S {
		native[i] = lo + (hi-lo)*s/length
	}
	pass1 := r.first.Eval(native)

	second, err := NewCurve(pass1, ArcLength)
	if err != nil {
		return nil, regionError(RegionCurve, fmt.Errorf("second pass: %w", err))
	}
	_, physical := second.Domain()
	scaled := make([]float64, dist.Len())
	for i, s := range dist.S {
		scaled[i] = s * physical / length
	}
	refined := second.Eval(scaled)
	refined[0] = r.raw[0]
	refined[len(refined)-1] = r.raw[len(r.raw)-1]
	return refined, nil
}

// Refine resamples raw at the positions of dist using a Uniform first pass.
func Refine(raw []r2.Vec, dist Distribution) ([]r2.Vec, error) {
	r, err := NewSurfaceRefiner(raw, Uniform)
	if err != nil {
		return nil, err
	}
	return r.Refine(dist)
}
