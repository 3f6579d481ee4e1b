package dimension

import (
	"github.com/bijoor/konkan-house/pkg/geometry"
)

// Placed is an edge scheduled for annotation: its stacking level on the
// side it renders against, and whether each end is trimmed to the clear
// interior span because another wall joins there.
type Placed struct {
	Edge      geometry.Edge
	Level     int
	TrimStart bool
	TrimEnd   bool
}

// Layout is the planned set of dimension annotations for one floor.
type Layout struct {
	// Outer holds perimeter dimensions per side, levels assigned so
	// overlapping spans stack outward without colliding.
	Outer map[geometry.Side][]Placed
	// Inner holds interior wall dimensions.
	Inner []Placed
	// maxLevel tracks the deepest stacking level per side, used to place
	// floor-extent dimensions outside everything else.
	maxLevel map[geometry.Side]int
}

// Plan turns a deduplicated edge set into a dimension layout: perimeter
// classification, per-side level stacking, and clear-span trims from
// wall junctions. Edges below the configured minimum length are kept in
// the layout; emission drops them after trimming, when the final
// measured span is known.
func Plan(set *geometry.Set, bounds geometry.Bounds, cfg Config) *Layout {
	l := &Layout{
		Outer:    make(map[geometry.Side][]Placed),
		maxLevel: make(map[geometry.Side]int),
	}

	perimeter := geometry.ClassifyPerimeter(set, bounds)
	connections := geometry.Connections(set)

	if cfg.ShowOuter {
		for _, side := range geometry.Sides {
			edges := perimeter.Edges(side)
			levels := geometry.AssignLevels(edges)
			l.maxLevel[side] = geometry.MaxLevel(levels)
			for _, e := range edges {
				// A wall end with no junction keeps its full span; only
				// ends where another wall joins are pulled in to the
				// clear opening.
				conn := connections[e.Key()]
				l.Outer[side] = append(l.Outer[side], Placed{
					Edge:      e,
					Level:     levels[e.Key()],
					TrimStart: conn.Start,
					TrimEnd:   conn.End,
				})
			}
		}
	}

	if cfg.ShowInner {
		for _, e := range set.Edges() {
			if perimeter.Contains(e.Key()) {
				continue
			}
			conn := connections[e.Key()]
			l.Inner = append(l.Inner, Placed{
				Edge:      e,
				TrimStart: conn.Start,
				TrimEnd:   conn.End,
			})
		}
	}

	return l
}

// SideOffset returns the offset distance from the drawing for a
// dimension at the given level on any side.
func (c Config) SideOffset(level int) float64 {
	return c.Offset + float64(level)*c.OffsetIncrement
}

// ExtentOffset returns the offset for a floor-extent dimension on the
// given side: one level beyond the deepest stacked dimension, plus an
// extra half-increment of breathing room.
func (l *Layout) ExtentOffset(side geometry.Side, cfg Config) float64 {
	return cfg.SideOffset(l.maxLevel[side]+1) + cfg.OffsetIncrement*1.5
}

// SlabOffset returns the offset for slab-extent dimensions: between the
// stacked perimeter dimensions and the floor-extent dimension.
func (l *Layout) SlabOffset(side geometry.Side, cfg Config) float64 {
	return cfg.SideOffset(l.maxLevel[side]+1) + cfg.OffsetIncrement*0.75
}
