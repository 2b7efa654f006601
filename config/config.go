// Package config loads mesh generation parameters from INI files.
//
// Every key is optional; missing keys keep the values of
// foilmesh.DefaultConfig. Example:
//
//	[files]
//	ps     = profiles/lower.dat
//	ss     = profiles/upper.dat
//	output = surfaceMesh.xyz
//
//	[ps]
//	initial_spacing_le = 0.002
//	growth_ratio_le    = 1.1
//	initial_spacing_te = 0.002
//	growth_ratio_te    = 1.1
//	max_spacing        = 0.01
//
//	[span]
//	width  = 0.01
//	points = 2
package config

import (
	"fmt"

	"github.com/soypat/foilmesh"
	"gopkg.in/ini.v1"
)

// Files names the inputs and outputs of a run.
type Files struct {
	PS, SS string
	// Output is the PLOT3D surface grid.
	Output string
	// STL, Plot and Preview are optional outputs, skipped when empty.
	STL, Plot, Preview string
}

// DefaultFiles returns the conventional file layout: profiles/ next to the output.
func DefaultFiles() Files {
	return Files{
		PS:     "profiles/lower.dat",
		SS:     "profiles/upper.dat",
		Output: "surfaceMesh.xyz",
	}
}

// Settings is the full content of a configuration file.
type Settings struct {
	Mesh  foilmesh.Config
	Files Files
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{Mesh: foilmesh.DefaultConfig(), Files: DefaultFiles()}
}

// Load reads settings from an INI file path or raw []byte data.
func Load(source interface{}) (Settings, error) {
	file, err := ini.Load(source)
	if err != nil {
		return Settings{}, fmt.Errorf("loading config: %w", err)
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) (Settings, error) {
	s := Default()
	s.Mesh.PS = loadSurface(file.Section("ps"), s.Mesh.PS)
	s.Mesh.SS = loadSurface(file.Section("ss"), s.Mesh.SS)

	span := file.Section("span")
	s.Mesh.SpanWidth = span.Key("width").MustFloat64(s.Mesh.SpanWidth)
	s.Mesh.NSpan = span.Key("points").MustInt(s.Mesh.NSpan)
	s.Mesh.NpTE = file.Section("trailing_edge").Key("points").MustInt(s.Mesh.NpTE)

	var err error
	refine := file.Section("refine")
	s.Mesh.MaxStretchIter = refine.Key("max_iter").MustInt(s.Mesh.MaxStretchIter)
	s.Mesh.Rounding, err = foilmesh.ParseRounding(refine.Key("rounding").MustString(s.Mesh.Rounding.String()))
	if err != nil {
		return Settings{}, fmt.Errorf("[refine] rounding: %w", err)
	}
	s.Mesh.FirstPass, err = foilmesh.ParseParameterization(refine.Key("first_pass").MustString(s.Mesh.FirstPass.String()))
	if err != nil {
		return Settings{}, fmt.Errorf("[refine] first_pass: %w", err)
	}
	s.Mesh.LengthMode, err = foilmesh.ParseLengthMode(refine.Key("length").MustString(s.Mesh.LengthMode.String()))
	if err != nil {
		return Settings{}, fmt.Errorf("[refine] length: %w", err)
	}

	ext := file.Section("extrude")
	s.Mesh.Extrude.N = ext.Key("points").MustInt(s.Mesh.Extrude.N)
	s.Mesh.Extrude.S0 = ext.Key("wall_spacing").MustFloat64(s.Mesh.Extrude.S0)
	s.Mesh.Extrude.MarchDist = ext.Key("march_distance").MustFloat64(s.Mesh.Extrude.MarchDist)

	files := file.Section("files")
	s.Files.PS = files.Key("ps").MustString(s.Files.PS)
	s.Files.SS = files.Key("ss").MustString(s.Files.SS)
	s.Files.Output = files.Key("output").MustString(s.Files.Output)
	s.Files.STL = files.Key("stl").MustString(s.Files.STL)
	s.Files.Plot = files.Key("plot").MustString(s.Files.Plot)
	s.Files.Preview = files.Key("preview").MustString(s.Files.Preview)
	return s, nil
}

func loadSurface(sec *ini.Section, def foilmesh.SurfaceParams) foilmesh.SurfaceParams {
	return foilmesh.SurfaceParams{
		LE: foilmesh.StretchSpec{
			Initial: sec.Key("initial_spacing_le").MustFloat64(def.LE.Initial),
			Ratio:   sec.Key("growth_ratio_le").MustFloat64(def.LE.Ratio),
		},
		TE: foilmesh.StretchSpec{
			Initial: sec.Key("initial_spacing_te").MustFloat64(def.TE.Initial),
			Ratio:   sec.Key("growth_ratio_te").MustFloat64(def.TE.Ratio),
		},
		MaxSpacing: sec.Key("max_spacing").MustFloat64(def.MaxSpacing),
	}
}
