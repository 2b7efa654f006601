package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/soypat/foilmesh"
)

// WritePlot3D writes g as a single zone ASCII PLOT3D grid: the zone count,
// the dimensions line and then every x, every y and every z coordinate,
// one value per line. Within each coordinate block the span index is the
// outer loop.
func WritePlot3D(w io.Writer, g *SurfaceGrid) error {
	if g.NChord < 2 || g.NSpan < 2 {
		return &foilmesh.InvalidGridDimensionError{NChord: g.NChord, NSpan: g.NSpan}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "1\n%d %d %d\n", g.NChord, g.NSpan, 1)
	for _, block := range [3][]float64{g.X, g.Y, g.Z} {
		for _, v := range block {
			fmt.Fprintf(bw, "%20.16f\n", v)
		}
	}
	return bw.Flush()
}

// CreatePlot3D writes g to a PLOT3D file at path.
func CreatePlot3D(path string, g *SurfaceGrid) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WritePlot3D(fp, g)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// maxPlot3DPoints bounds the grid size ReadPlot3D accepts from a header.
const maxPlot3DPoints = 1 << 26

// ReadPlot3D reads a single zone ASCII PLOT3D grid with a k dimension of 1
// as written by WritePlot3D.
func ReadPlot3D(r io.Reader) (*SurfaceGrid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return sc.Text(), nil
	}
	nextInt := func() (int, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		return strconv.Atoi(tok)
	}
	nzones, err := nextInt()
	if err != nil {
		return nil, fmt.Errorf("plot3d zone count: %w", err)
	}
	if nzones != 1 {
		return nil, fmt.Errorf("plot3d: want 1 zone, got %d", nzones)
	}
	var dims [3]int
	for i := range dims {
		dims[i], err = nextInt()
		if err != nil {
			return nil, fmt.Errorf("plot3d dimensions: %w", err)
		}
	}
	if dims[2] != 1 {
		return nil, fmt.Errorf("plot3d: want k dimension 1, got %d", dims[2])
	}
	if dims[0] < 2 || dims[1] < 2 {
		return nil, &foilmesh.InvalidGridDimensionError{NChord: dims[0], NSpan: dims[1]}
	}
	if dims[0] > maxPlot3DPoints/dims[1] {
		return nil, fmt.Errorf("plot3d: %dx%d grid exceeds %d points", dims[0], dims[1], maxPlot3DPoints)
	}
	n := dims[0] * dims[1]
	g := &SurfaceGrid{
		NChord: dims[0],
		NSpan:  dims[1],
		X:      make([]float64, n),
		Y:      make([]float64, n),
		Z:      make([]float64, n),
	}
	for _, block := range [3][]float64{g.X, g.Y, g.Z} {
		for i := range block {
			tok, err := next()
			if err != nil {
				return nil, fmt.Errorf("plot3d coordinate %d: %w", i, err)
			}
			block[i], err = strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
