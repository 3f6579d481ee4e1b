package floorplan

import (
	"testing"

	"github.com/bijoor/konkan-house/pkg/geometry"
	"github.com/bijoor/konkan-house/pkg/plan"
)

func TestEdgesSingleRoom(t *testing.T) {
	f := &plan.Floor{
		Rooms: []plan.Room{
			{Name: "Studio", X: 0, Y: 0, Width: 20, Length: 10},
		},
	}

	set := Edges(f)
	if set.Len() != 4 {
		t.Fatalf("edge count = %d, want 4", set.Len())
	}
	if got := len(set.Horizontal()); got != 2 {
		t.Errorf("horizontal count = %d, want 2", got)
	}
	if got := len(set.Vertical()); got != 2 {
		t.Errorf("vertical count = %d, want 2", got)
	}
}

func TestEdgesSharedWallDeduplicated(t *testing.T) {
	// Two rooms side by side: Left's east wall and Right's west wall are
	// the same line, so they collapse to one edge.
	f := &plan.Floor{
		Rooms: []plan.Room{
			{Name: "Left", X: 0, Y: 0, Width: 100, Length: 80},
			{Name: "Right", X: 100, Y: 0, Width: 100, Length: 80},
		},
	}

	set := Edges(f)
	if set.Len() != 7 {
		t.Errorf("edge count = %d, want 7 (8 walls minus 1 shared)", set.Len())
	}

	shared := geometry.Edge{X1: 100, Y1: 0, X2: 100, Y2: 80, Orientation: geometry.Vertical}
	if _, ok := set.Get(shared.Key()); !ok {
		t.Error("shared wall missing from edge set")
	}
}

func TestEdgesRespectsWallList(t *testing.T) {
	f := &plan.Floor{
		Rooms: []plan.Room{
			{Name: "Porch", X: 0, Y: 0, Width: 60, Length: 40, Walls: []plan.Direction{plan.DirNorth, plan.DirWest}},
		},
	}

	if got := Edges(f).Len(); got != 2 {
		t.Errorf("edge count = %d, want 2 for a two-wall room", got)
	}
}

func TestEdgesSkipsDegenerateWalls(t *testing.T) {
	f := &plan.Floor{
		Walls: []plan.Wall{
			{Name: "Good", StartX: 0, StartY: 0, EndX: 120, EndY: 0},
			{Name: "Point", StartX: 50, StartY: 50, EndX: 50, EndY: 50},
			{Name: "Diagonal", StartX: 0, StartY: 0, EndX: 30, EndY: 30},
		},
	}

	set := Edges(f)
	if set.Len() != 1 {
		t.Fatalf("edge count = %d, want 1 (degenerate walls skipped)", set.Len())
	}
	for _, e := range set.Edges() {
		if e.Source != "Good" {
			t.Errorf("surviving edge source = %q, want %q", e.Source, "Good")
		}
	}
}

func TestFloorBounds(t *testing.T) {
	f := &plan.Floor{
		Slabs: []plan.Slab{{X: -10, Y: -10, Width: 300, Length: 200}},
		Rooms: []plan.Room{{Name: "Hall", X: 0, Y: 0, Width: 100, Length: 80}},
		Walls: []plan.Wall{{StartX: 0, StartY: 180, EndX: 310, EndY: 180}},
	}

	b := FloorBounds(f)
	if b.MinX != -10 || b.MinY != -10 {
		t.Errorf("min corner = (%v, %v), want (-10, -10)", b.MinX, b.MinY)
	}
	if b.MaxX != 310 || b.MaxY != 190 {
		t.Errorf("max corner = (%v, %v), want (310, 190)", b.MaxX, b.MaxY)
	}
}

func TestFloorBoundsEmptyFloor(t *testing.T) {
	b := FloorBounds(&plan.Floor{})
	if !b.IsEmpty() {
		t.Error("bounds of an empty floor should be empty")
	}
}
