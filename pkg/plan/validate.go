package plan

import (
	"math"

	"github.com/bijoor/konkan-house/pkg/errors"
)

// Validate checks for fatal problems: ones that make the plan as a whole
// unusable. Per-object geometry defects are not fatal; those surface via
// Problems and the offending objects are skipped at render time.
func (p *Plan) Validate() error {
	if len(p.Floors) == 0 {
		return errors.New(errors.ErrCodeInvalidPlan, "plan has no floors")
	}

	seen := make(map[int]bool, len(p.Floors))
	for _, f := range p.Floors {
		if seen[f.Number] {
			return errors.New(errors.ErrCodeInvalidFloor, "duplicate floor number %d", f.Number)
		}
		seen[f.Number] = true
	}

	if p.WallThickness <= 0 {
		return errors.New(errors.ErrCodeInvalidPlan,
			"wall_thickness must be positive, got %v", p.WallThickness)
	}

	return p.Dimensions.Validate()
}

// Problems returns non-fatal defects: objects with degenerate or missing
// geometry. Each such object is skipped when rendering, never failing
// the whole drawing.
func (p *Plan) Problems() []error {
	var out []error
	for i := range p.Floors {
		out = append(out, p.Floors[i].problems()...)
	}
	return out
}

func (f *Floor) problems() []error {
	var out []error

	for _, r := range f.Rooms {
		if err := errors.ValidateObjectName(r.Name); err != nil {
			out = append(out, errors.Wrap(errors.ErrCodeInvalidObject, err,
				"floor %d: room", f.Number))
			continue
		}
		if r.Width <= 0 || r.Length <= 0 {
			out = append(out, errors.New(errors.ErrCodeInvalidObject,
				"floor %d: room %q has non-positive size %vx%v", f.Number, r.Name, r.Width, r.Length))
		}
		for _, d := range r.Walls {
			if !d.Valid() {
				out = append(out, errors.New(errors.ErrCodeInvalidObject,
					"floor %d: room %q has unknown wall direction %q", f.Number, r.Name, d))
			}
		}
	}

	for _, w := range f.Walls {
		dx := math.Abs(w.EndX - w.StartX)
		dy := math.Abs(w.EndY - w.StartY)
		switch {
		case dx < 0.01 && dy < 0.01:
			out = append(out, errors.New(errors.ErrCodeInvalidObject,
				"floor %d: wall %q has zero length", f.Number, w.Name))
		case dx >= 0.01 && dy >= 0.01:
			out = append(out, errors.New(errors.ErrCodeInvalidObject,
				"floor %d: wall %q is not axis-aligned", f.Number, w.Name))
		}
	}

	for _, o := range f.Doors {
		out = append(out, f.openingProblems(o, "door")...)
	}
	for _, o := range f.Windows {
		out = append(out, f.openingProblems(o, "window")...)
	}

	return out
}

func (f *Floor) openingProblems(o Opening, kind string) []error {
	var out []error
	if o.Width <= 0 {
		out = append(out, errors.New(errors.ErrCodeInvalidObject,
			"floor %d: %s at (%v, %v) has non-positive width", f.Number, kind, o.X, o.Y))
	}
	if !o.Direction.Valid() {
		out = append(out, errors.New(errors.ErrCodeInvalidObject,
			"floor %d: %s at (%v, %v) has unknown direction %q", f.Number, kind, o.X, o.Y, o.Direction))
	}
	return out
}
