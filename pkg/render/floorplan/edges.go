package floorplan

import (
	"github.com/bijoor/konkan-house/pkg/geometry"
	"github.com/bijoor/konkan-house/pkg/plan"
)

// Edges collects the wall centerlines of a floor into a deduplicated
// set. Room walls contribute their outline rectangle sides, so two
// rooms sharing a wall produce a single edge. Freestanding walls that
// are zero-length or diagonal are skipped; plan validation reports
// them separately.
func Edges(f *plan.Floor) *geometry.Set {
	set := geometry.NewSet()

	for i := range f.Rooms {
		r := &f.Rooms[i]
		for _, d := range plan.AllDirections {
			if !r.HasWall(d) {
				continue
			}
			x1, y1, x2, y2 := roomWallLine(r, d)
			if e, ok := geometry.FromPoints(x1, y1, x2, y2, r.WallName(d)); ok {
				set.Add(e)
			}
		}
	}

	for i := range f.Walls {
		w := &f.Walls[i]
		if e, ok := geometry.FromPoints(w.StartX, w.StartY, w.EndX, w.EndY, w.Name); ok {
			set.Add(e)
		}
	}

	return set
}

// roomWallLine returns the outline segment for one side of a room.
func roomWallLine(r *plan.Room, d plan.Direction) (x1, y1, x2, y2 float64) {
	switch d {
	case plan.DirNorth:
		return r.X, r.Y, r.X + r.Width, r.Y
	case plan.DirSouth:
		return r.X, r.Y + r.Length, r.X + r.Width, r.Y + r.Length
	case plan.DirEast:
		return r.X + r.Width, r.Y, r.X + r.Width, r.Y + r.Length
	default:
		return r.X, r.Y, r.X, r.Y + r.Length
	}
}

// FloorBounds computes the drawing extents of a floor from its slabs,
// beams, rooms and wall endpoints. Openings and pillars sit on walls
// and never extend the bounds.
func FloorBounds(f *plan.Floor) geometry.Bounds {
	b := geometry.EmptyBounds()

	for _, s := range f.Slabs {
		b.ExpandRect(s.X, s.Y, s.Width, s.Length)
	}
	for _, bm := range f.Beams {
		b.ExpandRect(bm.X, bm.Y, bm.Width, bm.Length)
	}
	for _, r := range f.Rooms {
		b.ExpandRect(r.X, r.Y, r.Width, r.Length)
	}
	for _, w := range f.Walls {
		b.ExpandPoint(w.StartX, w.StartY)
		b.ExpandPoint(w.EndX, w.EndY)
	}

	return b
}
