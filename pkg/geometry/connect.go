package geometry

import "math"

// connectTolerance is how close two endpoints must be to count as a wall
// junction.
const connectTolerance = 2.0

// Connection records whether another wall meets this edge at each end.
// A connected end is dimensioned to the clear interior span: the wall
// thickness of the joining wall is trimmed off.
type Connection struct {
	Start bool
	End   bool
}

// Connections detects wall junctions at the endpoints of every edge in
// the set. The result maps each edge key to its endpoint connectivity.
func Connections(s *Set) map[Key]Connection {
	edges := s.Edges()
	out := make(map[Key]Connection, len(edges))
	for i, e := range edges {
		var c Connection
		for j, other := range edges {
			if i == j {
				continue
			}
			if !c.Start && touches(other, e.X1, e.Y1) {
				c.Start = true
			}
			if !c.End && touches(other, e.X2, e.Y2) {
				c.End = true
			}
			if c.Start && c.End {
				break
			}
		}
		out[e.Key()] = c
	}
	return out
}

// touches reports whether either endpoint of e coincides with (x, y).
func touches(e Edge, x, y float64) bool {
	return (math.Abs(e.X1-x) < connectTolerance && math.Abs(e.Y1-y) < connectTolerance) ||
		(math.Abs(e.X2-x) < connectTolerance && math.Abs(e.Y2-y) < connectTolerance)
}
