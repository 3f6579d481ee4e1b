// Package geometry provides the axis-aligned primitives behind floor-plan
// dimensioning: canonical wall edges, deduplicating edge sets, bounding
// boxes, perimeter classification, and offset-level stacking.
package geometry

import "math"

// Orientation of an axis-aligned edge.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// axisTolerance is the maximum cross-axis drift allowed when inferring
// the orientation of a wall from its endpoints.
const axisTolerance = 0.01

// Edge is a single axis-aligned wall segment in plan coordinates
// (origin top-left, X right, Y down).
type Edge struct {
	X1, Y1      float64
	X2, Y2      float64
	Orientation Orientation
	Source      string // originating object, e.g. "Kitchen_North"
}

// FromPoints builds an edge from two endpoints, inferring orientation.
// It returns false for zero-length or non-axis-aligned segments; callers
// drop those rather than failing the whole drawing.
func FromPoints(x1, y1, x2, y2 float64, source string) (Edge, bool) {
	dx := math.Abs(x2 - x1)
	dy := math.Abs(y2 - y1)
	switch {
	case dy < axisTolerance && dx >= axisTolerance:
		return Edge{X1: x1, Y1: y1, X2: x2, Y2: y2, Orientation: Horizontal, Source: source}, true
	case dx < axisTolerance && dy >= axisTolerance:
		return Edge{X1: x1, Y1: y1, X2: x2, Y2: y2, Orientation: Vertical, Source: source}, true
	default:
		return Edge{}, false
	}
}

// Length returns the euclidean length of the edge.
func (e Edge) Length() float64 {
	return math.Hypot(e.X2-e.X1, e.Y2-e.Y1)
}

// Span returns the edge's extent along its own axis, with start <= end.
func (e Edge) Span() (start, end float64) {
	if e.Orientation == Horizontal {
		return math.Min(e.X1, e.X2), math.Max(e.X1, e.X2)
	}
	return math.Min(e.Y1, e.Y2), math.Max(e.Y1, e.Y2)
}

// Canonical returns the edge with endpoints in lexicographic order, so
// that the same wall traced in either direction compares equal.
func (e Edge) Canonical() Edge {
	if e.X1 < e.X2 || (e.X1 == e.X2 && e.Y1 <= e.Y2) {
		return e
	}
	return Edge{X1: e.X2, Y1: e.Y2, X2: e.X1, Y2: e.Y1, Orientation: e.Orientation, Source: e.Source}
}

// Key is a comparable identity for an edge, independent of direction.
// Coordinates are rounded to two decimals so float noise from different
// construction paths still keys identically.
type Key struct {
	X1, Y1, X2, Y2 float64
}

// Key returns the canonical key for the edge.
func (e Edge) Key() Key {
	c := e.Canonical()
	return Key{X1: round2(c.X1), Y1: round2(c.Y1), X2: round2(c.X2), Y2: round2(c.Y2)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
