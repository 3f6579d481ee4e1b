package plan

import (
	"testing"

	"github.com/bijoor/konkan-house/pkg/dimension"
	"github.com/bijoor/konkan-house/pkg/errors"
)

func validPlan() *Plan {
	p := &Plan{
		Name: "House",
		Floors: []Floor{
			{Number: 0, Rooms: []Room{{Name: "Living", X: 0, Y: 0, Width: 200, Length: 150}}},
		},
		Dimensions: dimension.Defaults(),
	}
	p.ApplyDefaults()
	return p
}

func TestValidate(t *testing.T) {
	if err := validPlan().Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateFatal(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Plan)
		code   errors.Code
	}{
		{
			name:   "no floors",
			mutate: func(p *Plan) { p.Floors = nil },
			code:   errors.ErrCodeInvalidPlan,
		},
		{
			name: "duplicate floor numbers",
			mutate: func(p *Plan) {
				p.Floors = append(p.Floors, Floor{Number: 0, Name: "Again"})
			},
			code: errors.ErrCodeInvalidFloor,
		},
		{
			name:   "negative wall thickness",
			mutate: func(p *Plan) { p.WallThickness = -1 },
			code:   errors.ErrCodeInvalidPlan,
		},
		{
			name:   "bad unit conversion",
			mutate: func(p *Plan) { p.Dimensions.UnitConversion = 0 },
			code:   errors.ErrCodeInvalidPlan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlan()
			tt.mutate(p)
			err := p.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestProblems(t *testing.T) {
	p := validPlan()
	f := &p.Floors[0]
	f.Rooms = append(f.Rooms, Room{Name: "Broken", Width: 0, Length: 100})
	f.Walls = append(f.Walls,
		Wall{Name: "Diagonal", StartX: 0, StartY: 0, EndX: 100, EndY: 100},
		Wall{Name: "Dot", StartX: 5, StartY: 5, EndX: 5, EndY: 5},
		Wall{Name: "Fine", StartX: 0, StartY: 200, EndX: 150, EndY: 200},
	)
	f.Doors = append(f.Doors, Opening{X: 10, Y: 10, Width: 36, Direction: "upward"})

	problems := p.Problems()
	if len(problems) != 4 {
		t.Fatalf("Problems() count = %d, want 4: %v", len(problems), problems)
	}
	for _, err := range problems {
		if !errors.Is(err, errors.ErrCodeInvalidObject) {
			t.Errorf("problem code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidObject)
		}
	}

	// Non-fatal: the plan still validates.
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}
