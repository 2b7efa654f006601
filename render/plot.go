package render

import (
	"errors"
	"image/color"

	"github.com/soypat/foilmesh/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotConfig controls PlotProfile output.
type PlotConfig struct {
	Title string
	// Width and Height of the figure. Axis ranges follow their ratio.
	Width, Height vg.Length
	// PointRadius is the radius of refined point markers.
	PointRadius vg.Length
}

// DefaultPlotConfig returns a wide figure suited to airfoil sections.
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{
		Title:       "Refined airfoil profile",
		Width:       12 * vg.Inch,
		Height:      4 * vg.Inch,
		PointRadius: vg.Points(1),
	}
}

// PlotProfile plots the raw surfaces as lines and the refined closed
// profile as points with equal axis scales. The image format is inferred
// from the extension of path (png, svg, pdf, ...).
func PlotProfile(path string, cfg PlotConfig, profile []r2.Vec, raw ...[]r2.Vec) error {
	p, err := profilePlot(cfg, profile, raw...)
	if err != nil {
		return err
	}
	return p.Save(cfg.Width, cfg.Height, path)
}

func profilePlot(cfg PlotConfig, profile []r2.Vec, raw ...[]r2.Vec) (*plot.Plot, error) {
	if len(profile) == 0 {
		return nil, errors.New("empty profile")
	}
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	bb := d2.Set(profile).Bounds()
	for i, surface := range raw {
		if len(surface) < 2 {
			continue
		}
		line, err := plotter.NewLine(toXYs(surface))
		if err != nil {
			return nil, err
		}
		line.Color = color.Black
		line.Width = vg.Points(1)
		p.Add(line)
		if i == 0 {
			p.Legend.Add("raw", line)
		}
		bb = bb.Extend(d2.Set(surface).Bounds())
	}
	scatter, err := plotter.NewScatter(toXYs(profile))
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 220, A: 255}
	scatter.GlyphStyle.Radius = cfg.PointRadius
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)
	p.Legend.Add("refined", scatter)

	bb = bb.Enlarge(r2.Scale(0.05, bb.Size()))
	if cfg.Width > 0 {
		bb = bb.FitAspect(float64(cfg.Height / cfg.Width))
	}
	p.X.Min, p.X.Max = bb.Min.X, bb.Max.X
	p.Y.Min, p.Y.Max = bb.Min.Y, bb.Max.Y
	return p, nil
}

func toXYs(pts []r2.Vec) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, v := range pts {
		xys[i].X = v.X
		xys[i].Y = v.Y
	}
	return xys
}
