package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bijoor/konkan-house/pkg/dimension"
	"github.com/bijoor/konkan-house/pkg/errors"
)

const samplePlan = `
name = "Test House"
wall_thickness = 8.0

[dimensions]
show_outer_dimensions = true
show_inner_dimensions = true
unit_format = "feet"
unit_conversion = 10.0
min_dimension_length = 20.0

[[floors]]
number = 0
name = "Ground Floor"

[[floors.slabs]]
x = 0.0
y = 0.0
width = 270.0
length = 450.0

[[floors.rooms]]
name = "Living"
x = 0.0
y = 0.0
width = 200.0
length = 150.0

[[floors.rooms]]
name = "Kitchen"
x = 0.0
y = 150.0
width = 200.0
length = 100.0
walls = ["south", "east", "west"]

[[floors.doors]]
x = 80.0
y = 150.0
width = 36.0
direction = "south"
room = "Kitchen"
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(samplePlan))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if p.Name != "Test House" {
		t.Errorf("Name = %q, want %q", p.Name, "Test House")
	}
	if len(p.Floors) != 1 {
		t.Fatalf("floor count = %d, want 1", len(p.Floors))
	}

	f := p.Floors[0]
	if len(f.Rooms) != 2 {
		t.Errorf("room count = %d, want 2", len(f.Rooms))
	}
	if len(f.Slabs) != 1 {
		t.Errorf("slab count = %d, want 1", len(f.Slabs))
	}
	if len(f.Doors) != 1 {
		t.Errorf("door count = %d, want 1", len(f.Doors))
	}

	kitchen := f.Rooms[1]
	if kitchen.HasWall(DirNorth) {
		t.Error("kitchen should not have a north wall")
	}
	if !kitchen.HasWall(DirSouth) {
		t.Error("kitchen should have a south wall")
	}
}

func TestParseAppliesDimensionDefaults(t *testing.T) {
	p, err := Parse([]byte(samplePlan))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	d := dimension.Defaults()
	if p.Dimensions.Offset != d.Offset {
		t.Errorf("Offset = %v, want default %v", p.Dimensions.Offset, d.Offset)
	}
	if p.Dimensions.TextSize != d.TextSize {
		t.Errorf("TextSize = %v, want default %v", p.Dimensions.TextSize, d.TextSize)
	}
	// Explicit values survive.
	if p.Dimensions.MinLength != 20 {
		t.Errorf("MinLength = %v, want 20", p.Dimensions.MinLength)
	}
}

func TestParseNoDimensionsSection(t *testing.T) {
	minimal := `
name = "Bare"

[[floors]]
number = 0

[[floors.rooms]]
name = "Hall"
x = 0.0
y = 0.0
width = 200.0
length = 100.0
`
	p, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	d := dimension.Defaults()
	if !p.Dimensions.ShowOuter || !p.Dimensions.ShowInner || !p.Dimensions.ShowRoom || !p.Dimensions.ShowOpening {
		t.Errorf("show flags = %v/%v/%v/%v, want all true",
			p.Dimensions.ShowOuter, p.Dimensions.ShowInner, p.Dimensions.ShowRoom, p.Dimensions.ShowOpening)
	}
	if p.Dimensions.MinLength != d.MinLength {
		t.Errorf("MinLength = %v, want default %v", p.Dimensions.MinLength, d.MinLength)
	}
	if p.Dimensions.Precision != d.Precision {
		t.Errorf("Precision = %v, want default %v", p.Dimensions.Precision, d.Precision)
	}
	if !p.Dimensions.FeetInches {
		t.Error("FeetInches = false, want default true")
	}
	if p.Dimensions.Unit != d.Unit {
		t.Errorf("Unit = %q, want default %q", p.Dimensions.Unit, d.Unit)
	}
}

func TestParseExplicitZeroValuesSurvive(t *testing.T) {
	explicit := `
[dimensions]
show_outer_dimensions = false
show_opening_dimensions = false
min_dimension_length = 0.0
precision = 0
use_feet_inches = false

[[floors]]
number = 0
`
	p, err := Parse([]byte(explicit))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if p.Dimensions.ShowOuter {
		t.Error("ShowOuter = true, want explicit false")
	}
	if p.Dimensions.ShowOpening {
		t.Error("ShowOpening = true, want explicit false")
	}
	if !p.Dimensions.ShowInner {
		t.Error("ShowInner = false, want default true")
	}
	if p.Dimensions.MinLength != 0 {
		t.Errorf("MinLength = %v, want explicit 0", p.Dimensions.MinLength)
	}
	if p.Dimensions.Precision != 0 {
		t.Errorf("Precision = %v, want explicit 0", p.Dimensions.Precision)
	}
	if p.Dimensions.FeetInches {
		t.Error("FeetInches = true, want explicit false")
	}
	if p.Dimensions.Offset != dimension.Defaults().Offset {
		t.Errorf("Offset = %v, want default %v", p.Dimensions.Offset, dimension.Defaults().Offset)
	}
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("not [valid toml"))
	if err == nil {
		t.Fatal("Parse() error = nil, want decode error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPlan) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPlan)
	}
}

func TestParseRejectsBadUnitFormat(t *testing.T) {
	bad := `
[dimensions]
unit_format = "furlongs"

[[floors]]
number = 0
`
	_, err := Parse([]byte(bad))
	if err == nil {
		t.Fatal("Parse() error = nil, want invalid unit error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidUnit) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidUnit)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "house.toml")
	if err := os.WriteFile(path, []byte(samplePlan), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name != "Test House" {
		t.Errorf("Name = %q, want %q", p.Name, "Test House")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Load() error = nil, want file not found")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestFloorLookup(t *testing.T) {
	p, err := Parse([]byte(samplePlan))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if _, err := p.Floor(0); err != nil {
		t.Errorf("Floor(0) error = %v", err)
	}
	if _, err := p.Floor(7); !errors.Is(err, errors.ErrCodeFloorNotFound) {
		t.Errorf("Floor(7) error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFloorNotFound)
	}
}
