package geometry

import "math"

// Bounds is an axis-aligned bounding rectangle.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyBounds returns bounds that any expansion will replace.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether the bounds have never been expanded.
func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// ExpandPoint grows the bounds to include (x, y).
func (b *Bounds) ExpandPoint(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxX = math.Max(b.MaxX, x)
	b.MaxY = math.Max(b.MaxY, y)
}

// ExpandRect grows the bounds to include the rectangle at (x, y) with the
// given width and height.
func (b *Bounds) ExpandRect(x, y, w, h float64) {
	b.ExpandPoint(x, y)
	b.ExpandPoint(x+w, y+h)
}
