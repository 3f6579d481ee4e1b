package floorplan

import (
	"bytes"
	"fmt"
	"math"

	"github.com/bijoor/konkan-house/pkg/plan"
)

// Fill colors for the structural layers.
const (
	wallColor   = "#8B4513"
	doorColor   = "#A0522D"
	windowColor = "#87CEEB"
	slabColor   = "#D3D3D3"
	beamColor   = "#8B4513"
	stairColor  = "#E8D5B7"
)

// drawWall emits a wall segment as a polygon expanded to its thickness
// on both sides of the centerline.
func drawWall(buf *bytes.Buffer, x1, y1, x2, y2, thickness float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Perpendicular unit vector times half thickness.
	px := -dy / length * thickness / 2
	py := dx / length * thickness / 2

	fmt.Fprintf(buf, `<polygon points="%g,%g %g,%g %g,%g %g,%g" fill="%s" stroke="#000" stroke-width="0.5"/>`+"\n",
		x1+px, y1+py, x2+px, y2+py, x2-px, y2-py, x1-px, y1-py, wallColor)
}

// drawRoom emits the walls of a room. Horizontal walls sit inset half
// a thickness so the wall body fills the outline; vertical walls are
// shortened by a full thickness at each end to butt against them.
func drawRoom(buf *bytes.Buffer, r *plan.Room, defThickness float64) {
	t := r.Thickness(defThickness)

	if r.HasWall(plan.DirNorth) {
		drawWall(buf, r.X, r.Y+t/2, r.X+r.Width, r.Y+t/2, t)
	}
	if r.HasWall(plan.DirSouth) {
		drawWall(buf, r.X, r.Y+r.Length-t/2, r.X+r.Width, r.Y+r.Length-t/2, t)
	}
	if r.HasWall(plan.DirEast) {
		drawWall(buf, r.X+r.Width-t/2, r.Y+t, r.X+r.Width-t/2, r.Y+r.Length-t, t)
	}
	if r.HasWall(plan.DirWest) {
		drawWall(buf, r.X+t/2, r.Y+t, r.X+t/2, r.Y+r.Length-t, t)
	}
}

// drawOpening emits a door or window as a rectangle across the wall.
func drawOpening(buf *bytes.Buffer, o *plan.Opening, fill string, depth float64) {
	if o.Direction.Horizontal() {
		fmt.Fprintf(buf, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="#000" stroke-width="0.5"/>`+"\n",
			o.X, o.Y-depth/2, o.Width, depth, fill)
	} else {
		fmt.Fprintf(buf, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="#000" stroke-width="0.5"/>`+"\n",
			o.X-depth/2, o.Y, depth, o.Width, fill)
	}
}

func drawDoor(buf *bytes.Buffer, o *plan.Opening) {
	drawOpening(buf, o, doorColor, 4)
}

func drawWindow(buf *bytes.Buffer, o *plan.Opening) {
	drawOpening(buf, o, windowColor, 2)
}

func drawSlab(buf *bytes.Buffer, s *plan.Slab) {
	fmt.Fprintf(buf, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="#999" stroke-width="1" opacity="0.6"/>`+"\n",
		s.X, s.Y, s.Width, s.Length, slabColor)
}

func drawBeam(buf *bytes.Buffer, b *plan.Beam) {
	fmt.Fprintf(buf, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="#654321" stroke-width="1" opacity="0.8"/>`+"\n",
		b.X, b.Y, b.Width, b.Length, beamColor)
}

// drawPillar emits a filled square centered on the pillar position.
// Pillars render last so they sit on top of walls.
func drawPillar(buf *bytes.Buffer, p *plan.Pillar, defSize float64) {
	size := p.Size
	if size == 0 {
		size = defSize
	}
	fmt.Fprintf(buf, `<rect x="%g" y="%g" width="%g" height="%g" fill="#000" stroke="#000" stroke-width="0.5"/>`+"\n",
		p.X-size/2, p.Y-size/2, size, size)
}

// drawStaircase emits a stair outline with step lines and a direction
// arrow along the run.
func drawStaircase(buf *bytes.Buffer, s *plan.Staircase) {
	buf.WriteString(`<g class="staircase">` + "\n")
	fmt.Fprintf(buf, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="#000" stroke-width="1"/>`+"\n",
		s.X, s.Y, s.Width, s.Length, stairColor)

	steps := s.Steps
	if steps == 0 {
		// Roughly ten units of tread per step.
		steps = int(s.Length / 10)
		if steps < 3 {
			steps = 3
		}
	}
	spacing := s.Length / float64(steps)
	for i := 1; i < steps; i++ {
		y := s.Y + float64(i)*spacing
		fmt.Fprintf(buf, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#666" stroke-width="0.5"/>`+"\n",
			s.X, y, s.X+s.Width, y)
	}

	cx := s.X + s.Width/2
	margin := s.Length * 0.15
	var startY, endY, baseY float64
	if s.Direction == "down" {
		startY = s.Y + margin
		endY = s.Y + s.Length - margin
		baseY = endY - 8
	} else {
		startY = s.Y + s.Length - margin
		endY = s.Y + margin
		baseY = endY + 8
	}

	fmt.Fprintf(buf, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#000" stroke-width="2"/>`+"\n",
		cx, startY, cx, endY)
	fmt.Fprintf(buf, `<polygon points="%g,%g %g,%g %g,%g" fill="#000"/>`+"\n",
		cx, endY, cx-5, baseY, cx+5, baseY)

	buf.WriteString("</g>\n")
}
