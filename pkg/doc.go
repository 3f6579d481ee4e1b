// Package pkg provides the core libraries for Konkan House floor plan rendering.
//
// # Overview
//
// Konkan House turns a declarative floor plan description (TOML) into SVG
// construction drawings with automatic dimensioning. The pkg directory is
// organized into five main areas:
//
//  1. [plan] - The floor plan data model and TOML loader
//  2. [geometry] - Axis-aligned edges, canonical keys, bounds, level stacking
//  3. [dimension] - Dimension configuration, formatting, and layout planning
//  4. [render/floorplan] - SVG drawing and dimension emission
//  5. [cache] - Content-addressed render caching (file and Redis backends)
//
// # Architecture
//
// The typical data flow:
//
//	Plan file (TOML)
//	         ↓
//	    [plan] package (load + validate)
//	         ↓
//	    [geometry] package (edge extraction + dedup)
//	         ↓
//	    [dimension] package (classify, stack, format)
//	         ↓
//	    [render/floorplan] package (SVG emission)
//	         ↓
//	    SVG/PDF/PNG output
//
// # Quick Start
//
// Load a plan and render one floor:
//
//	import (
//	    "os"
//	    "github.com/bijoor/konkan-house/pkg/plan"
//	    "github.com/bijoor/konkan-house/pkg/render/floorplan"
//	)
//
//	p, _ := plan.Load("house.toml")
//	svg := floorplan.Render(&p.Floors[0], floorplan.WithScale(2.0))
//	os.WriteFile("floor1.svg", svg, 0o644)
//
// # Main Packages
//
// [plan] - Plan, Floor, Room, Wall, Door, Window, Slab, Beam, Staircase and
// Pillar types, plus the TOML loader with validation problems.
//
// [geometry] - Edge primitives with canonical deduplication keys, bounding box
// accumulation, and the interval stacking used to assign dimension levels.
//
// [dimension] - Dimension configuration (offsets, units, text sizes), the unit
// formatter (feet-and-inches, metric, raw units), and the layout planner that
// classifies edges as perimeter or interior and stacks overlapping runs.
//
// [render/floorplan] - The SVG renderer: structural layers (slabs, beams,
// stairs, rooms, walls, openings, pillars) followed by dimension layers
// (opening, outer, slab, inner, room labels). Also converts SVG to PDF/PNG
// via rsvg-convert.
//
// [cache] - Cache interface with file, Redis, and null implementations, plus
// deterministic render keys derived from plan content and render settings.
//
// [errors] - Coded errors shared across the CLI and server surfaces.
//
// [buildinfo] - Version metadata injected at build time via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/render/...         # Specific package
//
// [plan]: https://pkg.go.dev/github.com/bijoor/konkan-house/pkg/plan
// [geometry]: https://pkg.go.dev/github.com/bijoor/konkan-house/pkg/geometry
// [dimension]: https://pkg.go.dev/github.com/bijoor/konkan-house/pkg/dimension
// [render/floorplan]: https://pkg.go.dev/github.com/bijoor/konkan-house/pkg/render/floorplan
// [cache]: https://pkg.go.dev/github.com/bijoor/konkan-house/pkg/cache
// [errors]: https://pkg.go.dev/github.com/bijoor/konkan-house/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/bijoor/konkan-house/pkg/buildinfo
package pkg
