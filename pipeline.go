package foilmesh

import (
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"
)

// RefinedSurface is one surface resampled onto its distribution.
type RefinedSurface struct {
	Surface Surface
	// Length is the surface length the distribution was built for.
	Length       float64
	Distribution Distribution
	// Points are ordered from leading edge to trailing edge.
	Points []r2.Vec
}

// Result is the outcome of Generate.
type Result struct {
	PS RefinedSurface
	SS RefinedSurface
	// Profile is the closed loop handed to the grid writer.
	Profile []r2.Vec
	Report  Report
}

// Report summarizes point counts of a run.
type Report struct {
	// PS and SS hold the number of spacings per region of each surface.
	PS, SS RegionCounts
	// TE is the number of points across the blunt trailing edge.
	TE int
	// Points is the number of points of the closed profile.
	Points int
	// Cells estimates the number of volume cells after extrusion.
	Cells int
}

// RegionCounts holds the number of spacings in each region of a surface.
type RegionCounts struct {
	LE, Middle, TE int
}

// Total returns the number of spacings along the surface.
func (rc RegionCounts) Total() int { return rc.LE + rc.Middle + rc.TE }

// CellEstimate returns the number of hexahedral cells a structured
// extrusion of nChord by nSpan points over nNormal layers of points yields.
func CellEstimate(nChord, nNormal, nSpan int) int {
	if nChord < 2 || nNormal < 2 || nSpan < 2 {
		return 0
	}
	return (nChord - 1) * (nNormal - 1) * (nSpan - 1)
}

// RefineSurface builds the distribution of one surface and resamples raw
// onto it.
func RefineSurface(s Surface, raw []r2.Vec, cfg Config) (RefinedSurface, error) {
	params := cfg.Surface(s)
	l := cfg.logger().WithField("surface", s.String())
	refiner, err := NewSurfaceRefiner(raw, cfg.FirstPass)
	if err != nil {
		return RefinedSurface{}, tagSurface(s, err)
	}
	length := refiner.Length(cfg.LengthMode)
	dist, err := BuildDistribution(length, params.LE, params.TE, params.MaxSpacing, DistributionOptions{
		MaxIter:  cfg.MaxStretchIter,
		Rounding: cfg.Rounding,
	})
	if err != nil {
		return RefinedSurface{}, tagSurface(s, err)
	}
	l.WithFields(log.Fields{
		"length":  length,
		"le":      dist.LE.Count,
		"middle":  dist.Middle,
		"te":      dist.TE.Count,
		"spacing": dist.MiddleSpacing,
	}).Debug("built distribution")
	pts, err := refiner.Refine(dist)
	if err != nil {
		return RefinedSurface{}, tagSurface(s, err)
	}
	return RefinedSurface{Surface: s, Length: length, Distribution: dist, Points: pts}, nil
}

// Generate refines both surfaces and closes them into a single loop. ps and
// ss must be ordered from leading edge to trailing edge. The surfaces are
// refined concurrently; they share no state.
func Generate(ps, ss []r2.Vec, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var (
		wg           sync.WaitGroup
		rps, rss     RefinedSurface
		errPS, errSS error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		rps, errPS = RefineSurface(PressureSide, ps, cfg)
	}()
	go func() {
		defer wg.Done()
		rss, errSS = RefineSurface(SuctionSide, ss, cfg)
	}()
	wg.Wait()
	if errPS != nil {
		return nil, errPS
	}
	if errSS != nil {
		return nil, errSS
	}

	profile, err := Assemble(rps.Points, rss.Points, cfg.NpTE)
	if err != nil {
		return nil, err
	}
	res := &Result{PS: rps, SS: rss, Profile: profile}
	res.Report = Report{
		PS:     RegionCounts{LE: rps.Distribution.LE.Count, Middle: rps.Distribution.Middle, TE: rps.Distribution.TE.Count},
		SS:     RegionCounts{LE: rss.Distribution.LE.Count, Middle: rss.Distribution.Middle, TE: rss.Distribution.TE.Count},
		TE:     cfg.NpTE,
		Points: len(profile),
		Cells:  CellEstimate(len(profile), cfg.Extrude.N, cfg.NSpan),
	}
	cfg.logger().WithFields(log.Fields{
		"ps":     res.Report.PS.Total(),
		"ss":     res.Report.SS.Total(),
		"te":     res.Report.TE,
		"points": res.Report.Points,
		"cells":  res.Report.Cells,
	}).Info("profile assembled")
	return res, nil
}

func tagSurface(s Surface, err error) error {
	var se *SurfaceError
	if errors.As(err, &se) {
		se.Surface = s
		return err
	}
	return &SurfaceError{Surface: s, Region: RegionCurve, Err: err}
}
