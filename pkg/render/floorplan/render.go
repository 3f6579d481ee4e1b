package floorplan

import (
	"bytes"
	"fmt"

	"github.com/bijoor/konkan-house/pkg/dimension"
	"github.com/bijoor/konkan-house/pkg/plan"
)

// Option configures a floor-plan rendering.
type Option func(*renderer)

type renderer struct {
	cfg       dimension.Config
	thickness float64
	scale     float64
	title     bool
}

// WithDimensions sets the dimension layer configuration.
func WithDimensions(cfg dimension.Config) Option {
	return func(r *renderer) { r.cfg = cfg }
}

// WithWallThickness sets the default wall thickness in drawing units.
func WithWallThickness(t float64) Option {
	return func(r *renderer) { r.thickness = t }
}

// WithScale sets the pixels-per-unit scale factor.
func WithScale(s float64) Option {
	return func(r *renderer) { r.scale = s }
}

// WithoutTitle suppresses the floor name heading.
func WithoutTitle() Option {
	return func(r *renderer) { r.title = false }
}

// Render draws one floor as a complete SVG document. Structural layers
// go bottom-up so walls cover slabs and pillars cover walls; the
// dimension layers planned by [dimension.Plan] draw between walls and
// pillars.
func Render(f *plan.Floor, opts ...Option) []byte {
	r := renderer{
		cfg:       dimension.Defaults(),
		thickness: plan.DefaultWallThickness,
		scale:     2.0,
		title:     true,
	}
	for _, opt := range opts {
		opt(&r)
	}

	bounds := FloorBounds(f)
	if bounds.IsEmpty() {
		bounds.ExpandPoint(0, 0)
	}

	set := Edges(f)
	layout := dimension.Plan(set, bounds, r.cfg)
	d := newDimensioner(r.cfg, r.thickness)

	// Frame: a base margin plus room for stacked dimensions when the
	// outer layer is on.
	baseMargin := 20.0
	dimMargin := 0.0
	if r.cfg.ShowOuter {
		maxOffset := r.cfg.SideOffset(3) + r.cfg.OffsetIncrement*1.5 + 10
		dimMargin = (maxOffset + 20) * r.scale
	}
	margin := baseMargin + dimMargin
	topMargin := 50 + dimMargin

	width := bounds.Width()*r.scale + 2*margin
	height := bounds.Height()*r.scale + margin + topMargin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, "<title>%s - Floor Plan</title>\n", f.Label())
	buf.WriteString("<defs>\n    <style>\n        text { font-family: Arial, sans-serif; }\n    </style>\n</defs>\n")
	fmt.Fprintf(&buf, `<g transform="translate(%g, %g) scale(%g, %g)">`+"\n",
		margin-bounds.MinX*r.scale, topMargin-bounds.MinY*r.scale, r.scale, r.scale)

	for i := range f.Slabs {
		drawSlab(&buf, &f.Slabs[i])
	}
	for i := range f.Beams {
		drawBeam(&buf, &f.Beams[i])
	}
	for i := range f.Stairs {
		drawStaircase(&buf, &f.Stairs[i])
	}
	for i := range f.Rooms {
		drawRoom(&buf, &f.Rooms[i], r.thickness)
	}
	for i := range f.Walls {
		w := &f.Walls[i]
		t := w.Thickness
		if t == 0 {
			t = r.thickness
		}
		drawWall(&buf, w.StartX, w.StartY, w.EndX, w.EndY, t)
	}
	for i := range f.Doors {
		drawDoor(&buf, &f.Doors[i])
	}
	for i := range f.Windows {
		drawWindow(&buf, &f.Windows[i])
	}

	if r.cfg.ShowOpening {
		d.openings(&buf, f, bounds)
	}
	if r.cfg.ShowOuter {
		d.outer(&buf, layout, bounds)
		d.slabs(&buf, layout, bounds, f.Slabs)
	}
	if r.cfg.ShowInner {
		d.inner(&buf, layout)
	}
	if r.cfg.ShowRoom {
		d.roomLabels(&buf, f.Rooms)
	}

	for i := range f.Pillars {
		drawPillar(&buf, &f.Pillars[i], r.thickness)
	}

	buf.WriteString("</g>\n")
	if r.title {
		fmt.Fprintf(&buf, `<text x="%g" y="30" text-anchor="middle" font-size="16" font-weight="bold">%s</text>`+"\n",
			width/2, f.Label())
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
