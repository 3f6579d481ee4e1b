// Package plan defines the floor-plan data model: a house plan made of
// floors, each holding rooms, walls, slabs, pillars, openings and
// staircases in a shared top-left-origin coordinate system (X right,
// Y down, Inkscape style).
package plan

import (
	"fmt"

	"github.com/bijoor/konkan-house/pkg/dimension"
	"github.com/bijoor/konkan-house/pkg/errors"
)

// DefaultWallThickness is used when neither the plan nor a room
// overrides it. Eight drawing units is eight inches at the stock ten
// units per foot.
const DefaultWallThickness = 8

// Direction names a compass side of a room or the axis of an opening.
type Direction string

const (
	DirNorth Direction = "north"
	DirSouth Direction = "south"
	DirEast  Direction = "east"
	DirWest  Direction = "west"
)

// AllDirections is the default wall set for a room.
var AllDirections = []Direction{DirNorth, DirSouth, DirEast, DirWest}

// Horizontal reports whether the direction runs along the X axis.
func (d Direction) Horizontal() bool { return d == DirNorth || d == DirSouth }

// Valid reports whether d is a known compass direction.
func (d Direction) Valid() bool {
	switch d {
	case DirNorth, DirSouth, DirEast, DirWest:
		return true
	}
	return false
}

// Plan is a complete house plan as decoded from a TOML plan file.
type Plan struct {
	Name          string           `toml:"name"`
	WallThickness float64          `toml:"wall_thickness"`
	Dimensions    dimension.Config `toml:"dimensions"`
	Floors        []Floor          `toml:"floors"`
}

// Floor is one storey of the plan.
type Floor struct {
	Number  int         `toml:"number"`
	Name    string      `toml:"name"`
	Slabs   []Slab      `toml:"slabs"`
	Beams   []Beam      `toml:"beams"`
	Rooms   []Room      `toml:"rooms"`
	Walls   []Wall      `toml:"walls"`
	Pillars []Pillar    `toml:"pillars"`
	Doors   []Opening   `toml:"doors"`
	Windows []Opening   `toml:"windows"`
	Stairs  []Staircase `toml:"staircases"`
}

// Label returns the floor's display name.
func (f *Floor) Label() string {
	if f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("Floor %d", f.Number)
}

// Room is a rectangular room. Width runs along X, Length along Y.
type Room struct {
	Name          string      `toml:"name"`
	X             float64     `toml:"x"`
	Y             float64     `toml:"y"`
	Width         float64     `toml:"width"`
	Length        float64     `toml:"length"`
	WallThickness float64     `toml:"wall_thickness"` // 0 means plan default
	Walls         []Direction `toml:"walls"`          // empty means all four
}

// Thickness returns the room's wall thickness, falling back to def.
func (r *Room) Thickness(def float64) float64 {
	if r.WallThickness > 0 {
		return r.WallThickness
	}
	return def
}

// HasWall reports whether the room has a wall on the given side.
func (r *Room) HasWall(d Direction) bool {
	if len(r.Walls) == 0 {
		return true
	}
	for _, w := range r.Walls {
		if w == d {
			return true
		}
	}
	return false
}

// WallName returns the conventional name for one of the room's walls,
// e.g. "Kitchen_North". Openings reference walls by this name.
func (r *Room) WallName(d Direction) string {
	switch d {
	case DirNorth:
		return r.Name + "_North"
	case DirSouth:
		return r.Name + "_South"
	case DirEast:
		return r.Name + "_East"
	default:
		return r.Name + "_West"
	}
}

// Wall is a freestanding axis-aligned wall segment.
type Wall struct {
	Name      string  `toml:"name"`
	StartX    float64 `toml:"start_x"`
	StartY    float64 `toml:"start_y"`
	EndX      float64 `toml:"end_x"`
	EndY      float64 `toml:"end_y"`
	Thickness float64 `toml:"thickness"` // 0 means plan default
}

// Slab is a floor slab rectangle.
type Slab struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Length float64 `toml:"length"`
}

// Beam is a structural beam rectangle, drawn above slabs.
type Beam struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Length float64 `toml:"length"`
}

// Pillar is a square structural pillar centered at (X, Y).
type Pillar struct {
	Name string  `toml:"name"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
	Size float64 `toml:"size"` // 0 means wall thickness
}

// Opening is a door or window in a wall. Width runs along the wall.
// The wall is found either by explicit name or from Room + Direction.
type Opening struct {
	X         float64   `toml:"x"`
	Y         float64   `toml:"y"`
	Width     float64   `toml:"width"`
	Direction Direction `toml:"direction"`
	Room      string    `toml:"room"`
	Wall      string    `toml:"wall"`
}

// WallRef returns the name of the wall this opening belongs to.
func (o *Opening) WallRef() string {
	if o.Wall != "" {
		return o.Wall
	}
	if o.Room == "" {
		return ""
	}
	switch o.Direction {
	case DirNorth:
		return o.Room + "_North"
	case DirSouth:
		return o.Room + "_South"
	case DirEast:
		return o.Room + "_East"
	case DirWest:
		return o.Room + "_West"
	}
	return ""
}

// Staircase is a stair run drawn with step lines and a direction arrow.
type Staircase struct {
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Width     float64 `toml:"width"`
	Length    float64 `toml:"length"`
	Direction string  `toml:"direction"` // "up" or "down"
	Steps     int     `toml:"steps"`     // 0 means derived from length
}

// ApplyDefaults fills the plan-level wall thickness default. The
// dimension configuration is seeded with its defaults before decoding,
// so explicit zeros in a plan file are left alone here.
func (p *Plan) ApplyDefaults() {
	if p.WallThickness == 0 {
		p.WallThickness = DefaultWallThickness
	}
}

// Floor returns the floor with the given number.
func (p *Plan) Floor(number int) (*Floor, error) {
	for i := range p.Floors {
		if p.Floors[i].Number == number {
			return &p.Floors[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeFloorNotFound, "plan has no floor %d", number)
}
