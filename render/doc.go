// Package render writes the outputs of a mesh generation run: the PLOT3D
// surface grid consumed by the volume mesh extruder, a binary STL of the
// same grid, a 2D plot of the profile and a shaded preview image.
package render
