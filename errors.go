package foilmesh

import (
	"fmt"
)

// Surface identifies one of the two airfoil surfaces.
type Surface uint8

const (
	// PressureSide is the lower (PS) surface.
	PressureSide Surface = iota + 1
	// SuctionSide is the upper (SS) surface.
	SuctionSide
)

func (s Surface) String() string {
	switch s {
	case PressureSide:
		return "PS"
	case SuctionSide:
		return "SS"
	}
	return "surface(" + fmt.Sprint(uint8(s)) + ")"
}

// Region identifies the part of a surface a failure originates from.
type Region uint8

const (
	RegionCurve Region = iota + 1
	RegionLE
	RegionMiddle
	RegionTE
)

func (r Region) String() string {
	switch r {
	case RegionCurve:
		return "curve"
	case RegionLE:
		return "LE"
	case RegionMiddle:
		return "middle"
	case RegionTE:
		return "TE"
	}
	return "region(" + fmt.Sprint(uint8(r)) + ")"
}

// DegenerateCurveError is returned when a point sequence cannot be
// interpolated: too few points, coincident consecutive points or
// non-finite coordinates.
type DegenerateCurveError struct {
	// Points is the number of points supplied.
	Points int
	// Index is the offending point index, or -1 if the failure is
	// not tied to a single point.
	Index  int
	Reason string
}

func (e *DegenerateCurveError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("degenerate curve (%d points): %s", e.Points, e.Reason)
	}
	return fmt.Sprintf("degenerate curve (%d points) at point %d: %s", e.Points, e.Index, e.Reason)
}

// StretchDivergenceError is returned when geometric growth from Initial by
// Ratio does not exceed Max within MaxIter steps.
type StretchDivergenceError struct {
	Initial, Ratio, Max float64
	MaxIter             int
}

func (e *StretchDivergenceError) Error() string {
	return fmt.Sprintf("stretching from %g by ratio %g never exceeds max spacing %g within %d steps",
		e.Initial, e.Ratio, e.Max, e.MaxIter)
}

// NegativeMiddleRegionError is returned when the two clustered end regions
// consume the whole surface length or more.
type NegativeMiddleRegionError struct {
	Length   float64
	LELength float64
	TELength float64
}

func (e *NegativeMiddleRegionError) Error() string {
	return fmt.Sprintf("end regions (LE %g + TE %g) leave no middle region on surface of length %g",
		e.LELength, e.TELength, e.Length)
}

// EmptyMiddleRegionError is returned when the middle region is shorter
// than a single constant spacing.
type EmptyMiddleRegionError struct {
	Remaining  float64
	MaxSpacing float64
}

func (e *EmptyMiddleRegionError) Error() string {
	return fmt.Sprintf("middle region of length %g fits no point at max spacing %g", e.Remaining, e.MaxSpacing)
}

// InvalidGridDimensionError is returned when a structured grid would have
// fewer than two points along a direction.
type InvalidGridDimensionError struct {
	NChord, NSpan int
}

func (e *InvalidGridDimensionError) Error() string {
	return fmt.Sprintf("invalid grid dimensions (%d, %d, 1): need at least 2 points chordwise and spanwise", e.NChord, e.NSpan)
}

// ParameterError is returned when an input parameter is out of its domain.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// SurfaceError decorates an error with the surface and region it occurred in.
type SurfaceError struct {
	Surface Surface
	Region  Region
	Err     error
}

func (e *SurfaceError) Error() string {
	prefix := e.Region.String()
	if e.Surface != 0 {
		prefix = e.Surface.String() + " " + prefix
	}
	return prefix + ": " + e.Err.Error()
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// regionError tags err with a region. The surface is filled in by the caller
// that knows it.
func regionError(r Region, err error) error {
	if err == nil {
		return nil
	}
	return &SurfaceError{Region: r, Err: err}
}
