// Package floorplan renders a floor of a house plan as an annotated
// 2D SVG drawing.
//
// # Overview
//
// Rendering happens in two passes over a [plan.Floor]:
//
//  1. Geometry: [Edges] collects every wall centerline into a
//     deduplicated [geometry.Set], and [FloorBounds] computes the
//     drawing extents from slabs, beams, rooms and walls.
//  2. Emission: [Render] draws the structural layers bottom-up (slabs,
//     beams, staircases, walls, openings) and then the annotation
//     layers planned by [dimension.Plan] (stacked perimeter
//     dimensions, interior dimensions, opening running dimensions,
//     room labels, slab extents).
//
// Basic usage:
//
//	svg := floorplan.Render(floor,
//	    floorplan.WithDimensions(p.Dimensions),
//	    floorplan.WithWallThickness(p.WallThickness),
//	)
//
// [ToPNG] and [ToPDF] convert the SVG output to raster and print
// formats via rsvg-convert.
//
// [plan.Floor]: github.com/bijoor/konkan-house/pkg/plan
// [geometry.Set]: github.com/bijoor/konkan-house/pkg/geometry
// [dimension.Plan]: github.com/bijoor/konkan-house/pkg/dimension
package floorplan
