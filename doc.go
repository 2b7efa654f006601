// Package foilmesh turns a coarse two surface airfoil profile into a
// smoothly clustered closed curve used as the seed surface of a
// hyperbolic volume mesh extrusion.
//
// Each surface, given from leading edge to trailing edge, is resampled on a
// Distribution that clusters points geometrically towards both edges with a
// constant spacing region in between (see BuildDistribution). Resampling
// goes through cubic interpolating splines (see Curve and SurfaceRefiner).
// Assemble closes both refined surfaces and the blunt trailing edge into a
// single loop. Generate runs the whole chain from a Config.
//
// Writing the loop as a structured surface grid is done by package render.
package foilmesh
