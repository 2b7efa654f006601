package foilmesh

import (
	"errors"
	"math"
	"testing"
)

func TestBuildDistribution(t *testing.T) {
	for _, test := range []struct {
		name   string
		length float64
		le, te StretchSpec
		max    float64
		opts   DistributionOptions
	}{
		{
			name:   "symmetric",
			length: 1,
			le:     StretchSpec{Initial: 0.002, Ratio: 1.1},
			te:     StretchSpec{Initial: 0.002, Ratio: 1.1},
			max:    0.01,
		},
		{
			name:   "fine TE",
			length: 1.0012492197250393,
			le:     StretchSpec{Initial: 0.002, Ratio: 1.1},
			te:     StretchSpec{Initial: 0.2e-3, Ratio: 1.1},
			max:    0.005,
		},
		{
			name:   "ceil",
			length: 0.6,
			le:     StretchSpec{Initial: 0.001, Ratio: 1.2},
			te:     StretchSpec{Initial: 0.004, Ratio: 1.05},
			max:    0.02,
			opts:   DistributionOptions{Rounding: Ceil},
		},
		{
			name:   "nearest",
			length: 3,
			le:     StretchSpec{Initial: 0.01, Ratio: 1.3},
			te:     StretchSpec{Initial: 0.01, Ratio: 1.15},
			max:    0.2,
			opts:   DistributionOptions{Rounding: Nearest},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			dist, err := BuildDistribution(test.length, test.le, test.te, test.max, test.opts)
			if err != nil {
				t.Fatal(err)
			}
			s := dist.S
			if s[0] != 0 {
				t.Errorf("first position %g, want 0", s[0])
			}
			if got := dist.Length(); !equalRel(got, test.length, 1e-9) {
				t.Errorf("last position %g, want %g", got, test.length)
			}
			for i := 1; i < len(s); i++ {
				if s[i] <= s[i-1] {
					t.Fatalf("positions not strictly increasing at %d: %g <= %g", i, s[i], s[i-1])
				}
			}
			if want := 1 + dist.LE.Count + dist.Middle + dist.TE.Count; len(s) != want {
				t.Errorf("got %d positions, want %d", len(s), want)
			}
			if dist.Intervals() != len(s)-1 {
				t.Errorf("Intervals() = %d, want %d", dist.Intervals(), len(s)-1)
			}
			// The middle region rescale must make the regions add up.
			sum := dist.LE.Length + float64(dist.Middle)*dist.MiddleSpacing + dist.TE.Length
			if !equalRel(sum, test.length, 1e-12) {
				t.Errorf("regions add up to %g, want %g", sum, test.length)
			}
			// Clustering towards each edge.
			first := s[1] - s[0]
			last := s[len(s)-1] - s[len(s)-2]
			if math.Abs(first-test.le.Initial) > 1e-15 {
				t.Errorf("first spacing %g, want LE initial %g", first, test.le.Initial)
			}
			if math.Abs(last-test.te.Initial) > 1e-12 {
				t.Errorf("last spacing %g, want TE initial %g", last, test.te.Initial)
			}
			// Spacing at the start of the middle region.
			mid := s[dist.LE.Count+1] - s[dist.LE.Count]
			if math.Abs(mid-dist.MiddleSpacing) > 1e-12 {
				t.Errorf("middle spacing %g, want %g", mid, dist.MiddleSpacing)
			}
		})
	}
}

func TestBuildDistributionRounding(t *testing.T) {
	le := StretchSpec{Initial: 0.01, Ratio: 2}
	te := StretchSpec{Initial: 0.01, Ratio: 2}
	// Both ends plan spacings 0.01 and 0.02, leaving 0.38 for 12.67
	// nominal spacings of 0.03.
	counts := map[Rounding]int{Floor: 12, Nearest: 13, Ceil: 13}
	for rounding, want := range counts {
		dist, err := BuildDistribution(0.44, le, te, 0.03, DistributionOptions{Rounding: rounding})
		if err != nil {
			t.Fatal(err)
		}
		if dist.Middle != want {
			t.Errorf("%s: middle count %d, want %d", rounding, dist.Middle, want)
		}
		if want := 0.38 / float64(want); math.Abs(dist.MiddleSpacing-want) > 1e-12 {
			t.Errorf("%s: middle spacing %g, want %g", rounding, dist.MiddleSpacing, want)
		}
	}
}

func TestBuildDistributionErrors(t *testing.T) {
	le := StretchSpec{Initial: 0.002, Ratio: 1.1}
	t.Run("negative middle", func(t *testing.T) {
		_, err := BuildDistribution(0.1, le, le, 0.01, DistributionOptions{})
		var neg *NegativeMiddleRegionError
		if !errors.As(err, &neg) {
			t.Fatalf("error = %v, want NegativeMiddleRegionError", err)
		}
		var se *SurfaceError
		if !errors.As(err, &se) || se.Region != RegionMiddle {
			t.Errorf("error %v not tagged with middle region", err)
		}
	})
	t.Run("empty middle", func(t *testing.T) {
		// Each end consumes 0.0810894..., leaving less than one max spacing.
		_, err := BuildDistribution(0.168, le, le, 0.01, DistributionOptions{})
		var empty *EmptyMiddleRegionError
		if !errors.As(err, &empty) {
			t.Fatalf("error = %v, want EmptyMiddleRegionError", err)
		}
	})
	t.Run("empty middle ceil", func(t *testing.T) {
		_, err := BuildDistribution(0.168, le, le, 0.01, DistributionOptions{Rounding: Ceil})
		if err != nil {
			t.Fatalf("ceil rounding keeps one middle spacing: %v", err)
		}
	})
	t.Run("divergent TE", func(t *testing.T) {
		_, err := BuildDistribution(1, le, StretchSpec{Initial: 0.002, Ratio: 1}, 0.01, DistributionOptions{})
		var div *StretchDivergenceError
		if !errors.As(err, &div) {
			t.Fatalf("error = %v, want StretchDivergenceError", err)
		}
		var se *SurfaceError
		if !errors.As(err, &se) || se.Region != RegionTE {
			t.Errorf("error %v not tagged with TE region", err)
		}
	})
	t.Run("iteration cap", func(t *testing.T) {
		_, err := BuildDistribution(1, le, le, 0.01, DistributionOptions{MaxIter: 10})
		var div *StretchDivergenceError
		if !errors.As(err, &div) || div.MaxIter != 10 {
			t.Fatalf("error = %v, want StretchDivergenceError with cap 10", err)
		}
	})
	t.Run("bad length", func(t *testing.T) {
		_, err := BuildDistribution(0, le, le, 0.01, DistributionOptions{})
		var perr *ParameterError
		if !errors.As(err, &perr) {
			t.Fatalf("error = %v, want ParameterError", err)
		}
	})
}

func TestParseRounding(t *testing.T) {
	for _, r := range []Rounding{Floor, Nearest, Ceil} {
		got, err := ParseRounding(r.String())
		if err != nil || got != r {
			t.Errorf("ParseRounding(%q) = %v, %v", r.String(), got, err)
		}
	}
	if _, err := ParseRounding("banker"); err == nil {
		t.Error("expected error for unknown rounding")
	}
}

func TestCloseDistribution(t *testing.T) {
	s := []float64{0, 0.5, 1 + 1e-12}
	if err := closeDistribution(s, 1); err != nil {
		t.Fatal(err)
	}
	if s[2] != 1 {
		t.Errorf("last position %g not snapped to length", s[2])
	}

	err := closeDistribution([]float64{0, 0.5, 0.9}, 1)
	var se *SurfaceError
	if !errors.As(err, &se) || se.Region != RegionMiddle {
		t.Fatalf("error = %v, want middle region SurfaceError", err)
	}
	var perr *ParameterError
	if !errors.As(err, &perr) || perr.Value != 0.9 {
		t.Errorf("error = %v, want ParameterError holding the end position", err)
	}
}
