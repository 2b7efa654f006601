package foilmesh

import "math"

// DefaultMaxStretchIter bounds the number of growth steps PlanStretch takes
// before giving up.
const DefaultMaxStretchIter = 1000

// StretchSpec describes geometric clustering towards an edge: the spacing
// at the edge and the growth ratio between consecutive spacings.
type StretchSpec struct {
	Initial float64
	Ratio   float64
}

// StretchPlan is a one-sided clustering region. Its spacings are
// Initial*Ratio^k for k in [0, Count).
type StretchPlan struct {
	Initial float64
	Ratio   float64
	// Count is the number of spacings in the region.
	Count int
	// Length is the sum of all spacings.
	Length float64
	// Final is the last and largest spacing of the region.
	Final float64
}

// Spacings returns the spacings of the region in growing order.
func (p StretchPlan) Spacings() []float64 {
	s := make([]float64, p.Count)
	d := p.Initial
	for i := range s {
		s[i] = d
		d *= p.Ratio
	}
	return s
}

// PlanStretch computes how many geometrically growing spacings, starting at
// initial and multiplied by ratio each step, fit before a spacing would
// exceed max. The spacing that exceeds max is not part of the plan.
// maxIter <= 0 selects DefaultMaxStretchIter.
func PlanStretch(initial, ratio, max float64, maxIter int) (StretchPlan, error) {
	if maxIter <= 0 {
		maxIter = DefaultMaxStretchIter
	}
	switch {
	case !finite(initial) || initial <= 0:
		return StretchPlan{}, &ParameterError{Name: "initial spacing", Value: initial, Reason: "must be positive"}
	case !finite(max) || max <= initial:
		return StretchPlan{}, &ParameterError{Name: "max spacing", Value: max, Reason: "must exceed initial spacing"}
	case math.IsNaN(ratio) || math.IsInf(ratio, 0):
		return StretchPlan{}, &ParameterError{Name: "growth ratio", Value: ratio, Reason: "must be finite"}
	case ratio <= 1:
		return StretchPlan{}, &StretchDivergenceError{Initial: initial, Ratio: ratio, Max: max, MaxIter: maxIter}
	}
	plan := StretchPlan{Initial: initial, Ratio: ratio}
	d := initial
	for i := 0; i < maxIter; i++ {
		if d > max {
			plan.Count = i
			return plan, nil
		}
		plan.Length += d
		plan.Final = d
		d *= ratio
	}
	return StretchPlan{}, &StretchDivergenceError{Initial: initial, Ratio: ratio, Max: max, MaxIter: maxIter}
}
