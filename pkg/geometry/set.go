package geometry

// Set is a collection of edges keyed by their canonical identity.
// Adding an edge whose key is already present replaces the earlier edge,
// so a wall shared by two rooms is dimensioned exactly once.
//
// Iteration order is insertion order of first appearance, which keeps
// rendered output deterministic.
type Set struct {
	order []Key
	edges map[Key]Edge
}

// NewSet creates an empty edge set.
func NewSet() *Set {
	return &Set{edges: make(map[Key]Edge)}
}

// Add inserts an edge, replacing any edge with the same canonical key.
func (s *Set) Add(e Edge) {
	k := e.Key()
	if _, ok := s.edges[k]; !ok {
		s.order = append(s.order, k)
	}
	s.edges[k] = e
}

// Len returns the number of distinct edges.
func (s *Set) Len() int { return len(s.order) }

// Get returns the edge stored under k.
func (s *Set) Get(k Key) (Edge, bool) {
	e, ok := s.edges[k]
	return e, ok
}

// Edges returns all edges in insertion order.
func (s *Set) Edges() []Edge {
	out := make([]Edge, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.edges[k])
	}
	return out
}

// Horizontal returns the horizontal edges in insertion order.
func (s *Set) Horizontal() []Edge { return s.byOrientation(Horizontal) }

// Vertical returns the vertical edges in insertion order.
func (s *Set) Vertical() []Edge { return s.byOrientation(Vertical) }

func (s *Set) byOrientation(o Orientation) []Edge {
	var out []Edge
	for _, k := range s.order {
		if e := s.edges[k]; e.Orientation == o {
			out = append(out, e)
		}
	}
	return out
}
