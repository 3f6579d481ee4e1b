package geometry

import (
	"cmp"
	"slices"
)

// stackGap is the clearance between spans sharing an offset level.
// Dimensions closer than this along the axis get stacked onto separate
// levels so their text never collides.
const stackGap = 5.0

// AssignLevels assigns a stacking level to each edge so that edges whose
// spans overlap (within stackGap) end up on different levels. Level 0 is
// closest to the drawing; each subsequent level is offset further out.
//
// All edges are expected to share one orientation, as produced by a
// single perimeter side.
func AssignLevels(edges []Edge) map[Key]int {
	if len(edges) == 0 {
		return nil
	}

	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	slices.SortFunc(sorted, func(a, b Edge) int {
		as, ae := a.Span()
		bs, be := b.Span()
		if c := cmp.Compare(as, bs); c != 0 {
			return c
		}
		return cmp.Compare(ae, be)
	})

	type span struct{ start, end float64 }
	var levels [][]span
	assigned := make(map[Key]int, len(sorted))

	for _, e := range sorted {
		start, end := e.Span()
		level := -1
		for i, occupied := range levels {
			free := true
			for _, s := range occupied {
				if start < s.end+stackGap && end > s.start-stackGap {
					free = false
					break
				}
			}
			if free {
				level = i
				levels[i] = append(levels[i], span{start, end})
				break
			}
		}
		if level < 0 {
			level = len(levels)
			levels = append(levels, []span{{start, end}})
		}
		assigned[e.Key()] = level
	}
	return assigned
}

// MaxLevel returns the highest level in the assignment, or 0 when empty.
func MaxLevel(levels map[Key]int) int {
	max := 0
	for _, l := range levels {
		if l > max {
			max = l
		}
	}
	return max
}
