// Command foilmesh refines a coarse two surface airfoil profile and writes
// the PLOT3D surface grid a hyperbolic volume mesher extrudes.
//
// Usage:
//
//	foilmesh [-config mesh.ini] [-ps lower.dat] [-ss upper.dat] [-o surfaceMesh.xyz] [-stl strip.stl] [-plot profile.png] [-preview strip.png] [-v]
package main

import (
	"errors"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/soypat/foilmesh"
	"github.com/soypat/foilmesh/config"
	"github.com/soypat/foilmesh/render"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "INI configuration file")
		psPath  = flag.String("ps", "", "pressure side profile, overrides [files] ps")
		ssPath  = flag.String("ss", "", "suction side profile, overrides [files] ss")
		output  = flag.String("o", "", "PLOT3D surface grid output, overrides [files] output")
		stlPath = flag.String("stl", "", "optional binary STL of the surface grid")
		plotOut = flag.String("plot", "", "optional profile plot (png, svg, pdf)")
		preview = flag.String("preview", "", "optional shaded PNG preview, requires -stl or [files] stl")
		verbose = flag.Bool("v", false, "log region counts of each surface")
	)
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	settings := config.Default()
	if *cfgPath != "" {
		var err error
		settings, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	override(&settings.Files.PS, *psPath)
	override(&settings.Files.SS, *ssPath)
	override(&settings.Files.Output, *output)
	override(&settings.Files.STL, *stlPath)
	override(&settings.Files.Plot, *plotOut)
	override(&settings.Files.Preview, *preview)
	settings.Mesh.Logger = log.StandardLogger()

	if err := run(settings); err != nil {
		logFailure(err)
		os.Exit(1)
	}
}

func run(s config.Settings) error {
	ps, err := foilmesh.LoadProfile(s.Files.PS)
	if err != nil {
		return err
	}
	ss, err := foilmesh.LoadProfile(s.Files.SS)
	if err != nil {
		return err
	}
	res, err := foilmesh.Generate(ps, ss, s.Mesh)
	if err != nil {
		return err
	}
	log.Infof("nPoints for PS: %d", res.Report.PS.Total())
	log.Infof("nPoints for SS: %d", res.Report.SS.Total())
	log.Infof("nPoints for TE: %d", res.Report.TE)
	log.Infof("nPoints Total: %d", res.Report.Points)
	log.Infof("Mesh cells: %d", res.Report.Cells)

	grid, err := render.NewSurfaceGrid(res.Profile, s.Mesh.SpanWidth, s.Mesh.NSpan)
	if err != nil {
		return err
	}
	if err = render.CreatePlot3D(s.Files.Output, grid); err != nil {
		return err
	}
	bb := grid.Bounds()
	log.WithFields(log.Fields{
		"file": s.Files.Output,
		"min":  bb.Min,
		"max":  bb.Max,
	}).Info("wrote surface grid")

	if s.Files.STL != "" {
		if err = render.CreateSTL(s.Files.STL, grid); err != nil {
			return err
		}
		log.WithField("file", s.Files.STL).Info("wrote STL")
	}
	if s.Files.Preview != "" {
		if s.Files.STL == "" {
			return errors.New("preview needs an STL output")
		}
		if err = render.PreviewPNG(s.Files.STL, s.Files.Preview, render.DefaultView()); err != nil {
			return err
		}
		log.WithField("file", s.Files.Preview).Info("wrote preview")
	}
	if s.Files.Plot != "" {
		if err = render.PlotProfile(s.Files.Plot, render.DefaultPlotConfig(), res.Profile, ps, ss); err != nil {
			return err
		}
		log.WithField("file", s.Files.Plot).Info("wrote plot")
	}
	return nil
}

func override(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}

// logFailure reports which surface and region failed along with the
// offending parameters.
func logFailure(err error) {
	entry := log.NewEntry(log.StandardLogger())
	var se *foilmesh.SurfaceError
	if errors.As(err, &se) {
		entry = entry.WithFields(log.Fields{"surface": se.Surface.String(), "region": se.Region.String()})
	}
	var (
		div   *foilmesh.StretchDivergenceError
		neg   *foilmesh.NegativeMiddleRegionError
		empty *foilmesh.EmptyMiddleRegionError
	)
	switch {
	case errors.As(err, &div):
		entry = entry.WithFields(log.Fields{"initial": div.Initial, "ratio": div.Ratio, "max": div.Max})
	case errors.As(err, &neg):
		entry = entry.WithFields(log.Fields{"length": neg.Length, "le_length": neg.LELength, "te_length": neg.TELength})
	case errors.As(err, &empty):
		entry = entry.WithFields(log.Fields{"remaining": empty.Remaining, "max": empty.MaxSpacing})
	}
	entry.Error(err)
}
