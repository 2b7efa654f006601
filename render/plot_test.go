package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/foilmesh/render"
)

func TestPlotProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.png")
	raw := square[:3]
	if err := render.PlotProfile(path, render.DefaultPlotConfig(), square, raw); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("empty plot file")
	}
	if err = render.PlotProfile(path, render.DefaultPlotConfig(), nil); err == nil {
		t.Error("expected error plotting empty profile")
	}
}

func TestPreviewPNG(t *testing.T) {
	dir := t.TempDir()
	grid, err := render.NewSurfaceGrid(square, 0.5, 2)
	if err != nil {
		t.Fatal(err)
	}
	stl := filepath.Join(dir, "strip.stl")
	if err = render.CreateSTL(stl, grid); err != nil {
		t.Fatal(err)
	}
	view := render.DefaultView()
	view.Width, view.Height, view.Scale = 64, 36, 1
	png := filepath.Join(dir, "strip.png")
	if err = render.PreviewPNG(stl, png, view); err != nil {
		t.Fatal(err)
	}
	if _, err = os.Stat(png); err != nil {
		t.Fatal(err)
	}
}
