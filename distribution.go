package foilmesh

import (
	"fmt"
	"math"
	"strings"
)

// Rounding selects how the number of constant spacings in the middle region
// is derived from the nominal maximum spacing.
type Rounding uint8

const (
	// Floor never lets the rescaled middle spacing drop below the nominal maximum.
	Floor Rounding = iota
	// Nearest rounds to the closest count.
	Nearest
	// Ceil never lets the rescaled middle spacing exceed the nominal maximum.
	Ceil
)

func (r Rounding) String() string {
	switch r {
	case Floor:
		return "floor"
	case Nearest:
		return "nearest"
	case Ceil:
		return "ceil"
	}
	return "rounding(?)"
}

// ParseRounding parses the names returned by Rounding.String.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "floor", "":
		return Floor, nil
	case "nearest", "round":
		return Nearest, nil
	case "ceil":
		return Ceil, nil
	}
	return Floor, fmt.Errorf("unknown rounding %q", s)
}

func (r Rounding) apply(f float64) float64 {
	switch r {
	case Nearest:
		return math.Round(f)
	case Ceil:
		return math.Ceil(f)
	}
	return math.Floor(f)
}

// DistributionOptions tunes BuildDistribution. The zero value reproduces
// the historical behaviour: 1000 stretch iterations and floor rounding.
type DistributionOptions struct {
	MaxIter  int
	Rounding Rounding
}

// Distribution is a strictly increasing sequence of arc length positions
// along a surface, starting at 0 and ending at the surface length.
// Positions cluster geometrically towards both ends with a constant spacing
// region in between.
type Distribution struct {
	// S holds the positions.
	S []float64
	// LE and TE are the clustering regions at each end.
	LE, TE StretchPlan
	// Middle is the number of constant spacings.
	Middle int
	// MiddleSpacing is the constant spacing after rescaling so the three
	// regions add up to the surface length.
	MiddleSpacing float64
}

// Length returns the last position of the distribution.
func (d Distribution) Length() float64 {
	if len(d.S) == 0 {
		return 0
	}
	return d.S[len(d.S)-1]
}

// Len returns the number of positions.
func (d Distribution) Len() int { return len(d.S) }

// Intervals returns the number of spacings, one less than Len.
func (d Distribution) Intervals() int { return d.LE.Count + d.Middle + d.TE.Count }

// BuildDistribution clusters points towards both ends of a surface of the
// given length. The LE region grows from le.Initial and the TE region
// from te.Initial, both capped by maxSpacing. The remainder is split into
// constant spacings whose size is rescaled so the distribution ends exactly
// at length.
func BuildDistribution(length float64, le, te StretchSpec, maxSpacing float64, opts DistributionOptions) (Distribution, error) {
	if !finite(length) || length <= 0 {
		return Distribution{}, &ParameterError{Name: "surface length", Value: length, Reason: "must be positive"}
	}
	planLE, err := PlanStretch(le.Initial, le.Ratio, maxSpacing, opts.MaxIter)
	if err != nil {
		return Distribution{}, regionError(RegionLE, err)
	}
	planTE, err := PlanStretch(te.Initial, te.Ratio, maxSpacing, opts.MaxIter)
	if err != nil {
		return Distribution{}, regionError(RegionTE, err)
	}
	remaining := length - planLE.Length - planTE.Length
	if remaining <= 0 {
		return Distribution{}, regionError(RegionMiddle, &NegativeMiddleRegionError{
			Length:   length,
			LELength: planLE.Length,
			TELength: planTE.Length,
		})
	}
	nmid := int(opts.Rounding.apply(remaining / maxSpacing))
	if nmid <= 0 {
		return Distribution{}, regionError(RegionMiddle, &EmptyMiddleRegionError{Remaining: remaining, MaxSpacing: maxSpacing})
	}
	dist := Distribution{
		LE:            planLE,
		TE:            planTE,
		Middle:        nmid,
		MiddleSpacing: remaining / float64(nmid),
	}

	s := make([]float64, 1, 1+planLE.Count+nmid+planTE.Count)
	last := 0.0
	for _, d := range planLE.Spacings() {
		last += d
		s = append(s, last)
	}
	for i := 0; i < nmid; i++ {
		last += dist.MiddleSpacing
		s = append(s, last)
	}
	// TE spacings shrink towards the edge so the sequence stays ordered by arc length.
	teSpacings := planTE.Spacings()
	for i := len(teSpacings) - 1; i >= 0; i-- {
		last += teSpacings[i]
		s = append(s, last)
	}
	if err := closeDistribution(s, length); err != nil {
		return Distribution{}, err
	}
	dist.S = s
	return dist, nil
}

// closeDistribution snaps the last position of s onto length. It fails
// when the regions do not add up to length within tolerance.
func closeDistribution(s []float64, length float64) error {
	last := s[len(s)-1]
	if !equalRel(last, length, tolerance) {
		return regionError(RegionMiddle, &ParameterError{
			Name:   "distribution end",
			Value:  last,
			Reason: fmt.Sprintf("regions do not add up to surface length %g", length),
		})
	}
	s[len(s)-1] = length
	return nil
}
