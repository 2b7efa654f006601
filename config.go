package foilmesh

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// SurfaceParams controls point clustering along one surface.
type SurfaceParams struct {
	// LE clusters towards the leading edge.
	LE StretchSpec
	// TE clusters towards the trailing edge.
	TE StretchSpec
	// MaxSpacing caps both clustering regions and is the nominal spacing
	// of the middle region.
	MaxSpacing float64
}

// ExtrudeParams are handed to the volume mesh extruder. They are not
// interpreted here except for the cell count estimate.
type ExtrudeParams struct {
	// N is the number of points marched in the wall normal direction.
	N int
	// S0 is the first layer thickness at the wall.
	S0 float64
	// MarchDist is the total marching distance.
	MarchDist float64
}

// Config holds every parameter of a mesh generation run. Each surface is
// configured independently.
type Config struct {
	PS SurfaceParams
	SS SurfaceParams

	// SpanWidth is the extent of the surface grid in the span (z) direction.
	SpanWidth float64
	// NSpan is the number of span stations, at least 2.
	NSpan int
	// NpTE is the number of points across the blunt trailing edge, ends included.
	NpTE int

	// MaxStretchIter bounds the clustering search. Zero selects DefaultMaxStretchIter.
	MaxStretchIter int
	// Rounding derives the middle region count.
	Rounding Rounding
	// FirstPass is the parameterization of the raw surface curve.
	FirstPass Parameterization
	// LengthMode selects what is taken as each surface's length.
	LengthMode LengthMode

	Extrude ExtrudeParams

	// Logger receives diagnostics. Nil discards them.
	Logger log.FieldLogger
}

// DefaultConfig returns the parameters used for the S809 wind turbine
// section profiles this tool was first written for.
func DefaultConfig() Config {
	return Config{
		PS: SurfaceParams{
			LE:         StretchSpec{Initial: 0.002, Ratio: 1.1},
			TE:         StretchSpec{Initial: 0.002, Ratio: 1.1},
			MaxSpacing: 0.01,
		},
		SS: SurfaceParams{
			LE:         StretchSpec{Initial: 0.002, Ratio: 1.1},
			TE:         StretchSpec{Initial: 0.2e-3, Ratio: 1.1},
			MaxSpacing: 0.005,
		},
		SpanWidth:      0.01,
		NSpan:          2,
		NpTE:           9,
		MaxStretchIter: DefaultMaxStretchIter,
		Rounding:       Floor,
		FirstPass:      Uniform,
		LengthMode:     ArcLengthMode,
		Extrude: ExtrudeParams{
			N:         85,
			S0:        1e-5,
			MarchDist: 20,
		},
	}
}

// Surface returns the parameters of surface s.
func (c Config) Surface(s Surface) SurfaceParams {
	if s == SuctionSide {
		return c.SS
	}
	return c.PS
}

// Validate checks the parameters shared by both surfaces. Per surface
// clustering parameters are checked while planning.
func (c Config) Validate() error {
	if c.NSpan < 2 {
		return &InvalidGridDimensionError{NSpan: c.NSpan}
	}
	if !finite(c.SpanWidth) || c.SpanWidth <= 0 {
		return &ParameterError{Name: "span width", Value: c.SpanWidth, Reason: "must be positive"}
	}
	if c.NpTE < 2 {
		return &ParameterError{Name: "trailing edge points", Value: float64(c.NpTE), Reason: "need at least 2"}
	}
	return nil
}

func (c Config) logger() log.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
