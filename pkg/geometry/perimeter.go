package geometry

import "math"

// Side identifies one side of the plan perimeter, named by compass
// direction with north at the top of the drawing.
type Side string

const (
	North Side = "north"
	South Side = "south"
	East  Side = "east"
	West  Side = "west"
)

// Sides lists all perimeter sides in drawing order.
var Sides = []Side{North, South, West, East}

// PerimeterTolerance is how far an edge may sit from the bounding
// rectangle and still count as a perimeter edge. Walls are drawn centered
// on their axis, so room outlines land slightly inside the slab bounds.
const PerimeterTolerance = 2.0

// Perimeter holds the edges classified onto each side of the plan
// boundary. Edges not present on any side are interior.
type Perimeter struct {
	edges map[Side][]Edge
	keys  map[Key]bool
}

// ClassifyPerimeter splits the set into perimeter edges per side.
// A horizontal edge on the top bound is north, bottom bound south; a
// vertical edge on the left bound is west, right bound east. An edge
// strictly inside the bounds classifies onto no side.
func ClassifyPerimeter(s *Set, b Bounds) *Perimeter {
	p := &Perimeter{
		edges: make(map[Side][]Edge),
		keys:  make(map[Key]bool),
	}
	if b.IsEmpty() {
		return p
	}
	for _, e := range s.Horizontal() {
		switch {
		case math.Abs(e.Y1-b.MinY) < PerimeterTolerance:
			p.add(North, e)
		case math.Abs(e.Y1-b.MaxY) < PerimeterTolerance:
			p.add(South, e)
		}
	}
	for _, e := range s.Vertical() {
		switch {
		case math.Abs(e.X1-b.MinX) < PerimeterTolerance:
			p.add(West, e)
		case math.Abs(e.X1-b.MaxX) < PerimeterTolerance:
			p.add(East, e)
		}
	}
	return p
}

func (p *Perimeter) add(s Side, e Edge) {
	p.edges[s] = append(p.edges[s], e)
	p.keys[e.Key()] = true
}

// Edges returns the perimeter edges on the given side.
func (p *Perimeter) Edges(s Side) []Edge { return p.edges[s] }

// Contains reports whether the edge with key k lies on the perimeter.
func (p *Perimeter) Contains(k Key) bool { return p.keys[k] }
