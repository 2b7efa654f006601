package render

import (
	"math"

	"github.com/soypat/foilmesh"
	"github.com/soypat/foilmesh/internal/d3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// SurfaceGrid is a single zone structured grid of NChord by NSpan by 1
// points. Coordinates are stored span index major: the point (i, j) is at
// index j*NChord+i.
type SurfaceGrid struct {
	NChord, NSpan int
	X, Y, Z       []float64
}

// NewSurfaceGrid replicates a closed profile at nSpan evenly spaced span
// stations from 0 to spanWidth, both included.
func NewSurfaceGrid(profile []r2.Vec, spanWidth float64, nSpan int) (*SurfaceGrid, error) {
	nc := len(profile)
	if nc < 2 || nSpan < 2 {
		return nil, &foilmesh.InvalidGridDimensionError{NChord: nc, NSpan: nSpan}
	}
	if !(spanWidth > 0) || math.IsInf(spanWidth, 0) {
		return nil, &foilmesh.ParameterError{Name: "span width", Value: spanWidth, Reason: "must be positive"}
	}
	stations := floats.Span(make([]float64, nSpan), 0, spanWidth)
	g := &SurfaceGrid{
		NChord: nc,
		NSpan:  nSpan,
		X:      make([]float64, nc*nSpan),
		Y:      make([]float64, nc*nSpan),
		Z:      make([]float64, nc*nSpan),
	}
	for j, z := range stations {
		off := j * nc
		for i, p := range profile {
			g.X[off+i] = p.X
			g.Y[off+i] = p.Y
			g.Z[off+i] = z
		}
	}
	return g, nil
}

// Len returns the number of grid points.
func (g *SurfaceGrid) Len() int { return g.NChord * g.NSpan }

// At returns the grid point at chordwise index i and span index j.
func (g *SurfaceGrid) At(i, j int) r3.Vec {
	k := j*g.NChord + i
	return r3.Vec{X: g.X[k], Y: g.Y[k], Z: g.Z[k]}
}

// Bounds returns the bounding box of the grid points.
func (g *SurfaceGrid) Bounds() r3.Box {
	bb := d3.Box{Min: g.At(0, 0), Max: g.At(0, 0)}
	for j := 0; j < g.NSpan; j++ {
		for i := 0; i < g.NChord; i++ {
			bb = bb.Include(g.At(i, j))
		}
	}
	return r3.Box(bb)
}

// Triangles splits every grid cell into two triangles. Triangles with
// coincident vertices are skipped.
func (g *SurfaceGrid) Triangles() []Triangle3 {
	tris := make([]Triangle3, 0, 2*(g.NChord-1)*(g.NSpan-1))
	for j := 0; j < g.NSpan-1; j++ {
		for i := 0; i < g.NChord-1; i++ {
			a, b := g.At(i, j), g.At(i+1, j)
			c, d := g.At(i+1, j+1), g.At(i, j+1)
			for _, t := range [2]Triangle3{{V: [3]r3.Vec{a, b, c}}, {V: [3]r3.Vec{a, c, d}}} {
				if !t.Degenerate(0) {
					tris = append(tris, t)
				}
			}
		}
	}
	return tris
}
