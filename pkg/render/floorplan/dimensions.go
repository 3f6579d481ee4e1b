package floorplan

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/bijoor/konkan-house/pkg/dimension"
	"github.com/bijoor/konkan-house/pkg/geometry"
	"github.com/bijoor/konkan-house/pkg/plan"
)

const arrowSize = 3

// dimensioner emits dimension annotations for one floor.
type dimensioner struct {
	cfg       dimension.Config
	fm        *dimension.Formatter
	thickness float64
}

func newDimensioner(cfg dimension.Config, thickness float64) *dimensioner {
	return &dimensioner{cfg: cfg, fm: dimension.NewFormatter(cfg), thickness: thickness}
}

// line draws one dimension line with witness lines, arrowheads and
// measurement text. The offset is signed: negative places the line
// above or left of the edge. Trimmed ends move inward by the wall
// thickness so the text reads the clear interior span. Spans shorter
// than the configured minimum are dropped.
func (d *dimensioner) line(buf *bytes.Buffer, x1, y1, x2, y2, offset float64, horizontal, trimStart, trimEnd bool) {
	if trimStart {
		if horizontal {
			x1 += d.thickness
		} else {
			y1 += d.thickness
		}
	}
	if trimEnd {
		if horizontal {
			x2 -= d.thickness
		} else {
			y2 -= d.thickness
		}
	}

	length := math.Hypot(x2-x1, y2-y1)
	if length < d.cfg.MinLength {
		return
	}
	text := d.fm.Format(length)
	textSize := d.cfg.TextSize

	buf.WriteString(`<g class="dimension">` + "\n")

	if horizontal {
		dimY := y1 + offset
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#000" stroke-width="0.5"/>`+"\n", x1, dimY, x2, dimY)
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#000" stroke-width="0.3" stroke-dasharray="2,2"/>`+"\n", x1, y1, x1, dimY)
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#000" stroke-width="0.3" stroke-dasharray="2,2"/>`+"\n", x2, y2, x2, dimY)
		fmt.Fprintf(buf, `  <polygon points="%g,%g %g,%g %g,%g" fill="#000"/>`+"\n",
			x1, dimY, x1+arrowSize, dimY-arrowSize, x1+arrowSize, dimY+arrowSize)
		fmt.Fprintf(buf, `  <polygon points="%g,%g %g,%g %g,%g" fill="#000"/>`+"\n",
			x2, dimY, x2-arrowSize, dimY-arrowSize, x2-arrowSize, dimY+arrowSize)

		textY := dimY + textSize + 3
		if offset < 0 {
			textY = dimY - 5
		}
		fmt.Fprintf(buf, `  <text x="%g" y="%g" text-anchor="middle" font-size="%g" fill="#000">%s</text>`+"\n",
			(x1+x2)/2, textY, textSize, text)
	} else {
		dimX := x1 + offset
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#000" stroke-width="0.5"/>`+"\n", dimX, y1, dimX, y2)
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#000" stroke-width="0.3" stroke-dasharray="2,2"/>`+"\n", x1, y1, dimX, y1)
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#000" stroke-width="0.3" stroke-dasharray="2,2"/>`+"\n", x2, y2, dimX, y2)
		fmt.Fprintf(buf, `  <polygon points="%g,%g %g,%g %g,%g" fill="#000"/>`+"\n",
			dimX, y1, dimX-arrowSize, y1+arrowSize, dimX+arrowSize, y1+arrowSize)
		fmt.Fprintf(buf, `  <polygon points="%g,%g %g,%g %g,%g" fill="#000"/>`+"\n",
			dimX, y2, dimX-arrowSize, y2-arrowSize, dimX+arrowSize, y2-arrowSize)

		// Rotated so the text runs along the dimension line.
		textX := dimX + textSize + 3
		if offset < 0 {
			textX = dimX - textSize - 3
		}
		midY := (y1 + y2) / 2
		fmt.Fprintf(buf, `  <text x="%g" y="%g" text-anchor="middle" font-size="%g" fill="#000" transform="rotate(-90 %g %g)">%s</text>`+"\n",
			textX, midY, textSize, textX, midY, text)
	}

	buf.WriteString("</g>\n")
}

// edgeLine draws the dimension for a placed edge at a signed offset.
func (d *dimensioner) edgeLine(buf *bytes.Buffer, p dimension.Placed, offset float64) {
	horizontal := p.Edge.Orientation == geometry.Horizontal
	d.line(buf, p.Edge.X1, p.Edge.Y1, p.Edge.X2, p.Edge.Y2, offset, horizontal, p.TrimStart, p.TrimEnd)
}

// sideSign returns -1 for sides dimensioned above or left of the
// drawing and +1 for below or right.
func sideSign(side geometry.Side) float64 {
	if side == geometry.North || side == geometry.West {
		return -1
	}
	return 1
}

// outer draws the stacked perimeter dimensions and the floor extent
// dimension on every side.
func (d *dimensioner) outer(buf *bytes.Buffer, l *dimension.Layout, bounds geometry.Bounds) {
	for _, side := range geometry.Sides {
		sign := sideSign(side)
		for _, p := range l.Outer[side] {
			d.edgeLine(buf, p, sign*d.cfg.SideOffset(p.Level))
		}

		// Overall floor extent, outside every stacked level.
		offset := sign * l.ExtentOffset(side, d.cfg)
		switch side {
		case geometry.North:
			d.line(buf, bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MinY, offset, true, false, false)
		case geometry.South:
			d.line(buf, bounds.MinX, bounds.MaxY, bounds.MaxX, bounds.MaxY, offset, true, false, false)
		case geometry.West:
			d.line(buf, bounds.MinX, bounds.MinY, bounds.MinX, bounds.MaxY, offset, false, false, false)
		case geometry.East:
			d.line(buf, bounds.MaxX, bounds.MinY, bounds.MaxX, bounds.MaxY, offset, false, false, false)
		}
	}
}

// inner draws interior wall dimensions below or right of each edge.
func (d *dimensioner) inner(buf *bytes.Buffer, l *dimension.Layout) {
	for _, p := range l.Inner {
		d.edgeLine(buf, p, d.cfg.InnerOffset)
	}
}

// slabTolerance is how far a slab may differ from the floor bounds
// before it earns its own extent dimensions.
const slabTolerance = 1.0

// slabs draws extent dimensions for slabs whose footprint differs from
// the overall floor bounds, placed between the stacked perimeter
// dimensions and the floor extents.
func (d *dimensioner) slabs(buf *bytes.Buffer, l *dimension.Layout, bounds geometry.Bounds, floorSlabs []plan.Slab) {
	for i := range floorSlabs {
		s := &floorSlabs[i]
		widthDiffers := math.Abs(s.Width-bounds.Width()) > slabTolerance || math.Abs(s.X-bounds.MinX) > slabTolerance
		lengthDiffers := math.Abs(s.Length-bounds.Height()) > slabTolerance || math.Abs(s.Y-bounds.MinY) > slabTolerance
		if !widthDiffers && !lengthDiffers {
			continue
		}

		buf.WriteString(`<g class="slab-dimension">` + "\n")
		if widthDiffers {
			d.line(buf, s.X, s.Y, s.X+s.Width, s.Y, -l.SlabOffset(geometry.North, d.cfg), true, false, false)
			d.line(buf, s.X, s.Y+s.Length, s.X+s.Width, s.Y+s.Length, l.SlabOffset(geometry.South, d.cfg), true, false, false)
		}
		if lengthDiffers {
			d.line(buf, s.X, s.Y, s.X, s.Y+s.Length, -l.SlabOffset(geometry.West, d.cfg), false, false, false)
			d.line(buf, s.X+s.Width, s.Y, s.X+s.Width, s.Y+s.Length, l.SlabOffset(geometry.East, d.cfg), false, false, false)
		}
		buf.WriteString("</g>\n")
	}
}

// roomLabels draws each room's name with its carpet dimensions, the
// clear interior span after subtracting wall thickness on every side.
func (d *dimensioner) roomLabels(buf *bytes.Buffer, rooms []plan.Room) {
	size := d.cfg.RoomTextSize
	for i := range rooms {
		r := &rooms[i]
		t := r.Thickness(d.thickness)
		cx := r.X + r.Width/2
		cy := r.Y + r.Length/2

		carpetW := d.fm.Format(r.Width - 2*t)
		carpetL := d.fm.Format(r.Length - 2*t)

		fmt.Fprintf(buf, `<text x="%g" y="%g" text-anchor="middle" font-size="%g" font-weight="bold" fill="#333">%s</text>`+"\n",
			cx, cy-8, size, r.Name)
		fmt.Fprintf(buf, `<text x="%g" y="%g" text-anchor="middle" font-size="%g" fill="#666">%s &#215; %s</text>`+"\n",
			cx, cy+8, size-2, carpetW, carpetL)
	}
}

// wallSpan is a named wall's extent along its own axis, used to anchor
// opening dimensions.
type wallSpan struct {
	start, end float64
	dir        plan.Direction
}

// wallSpans indexes every wall of the floor by name: the four sides of
// each room plus named freestanding walls. Freestanding walls take the
// compass side nearest to them.
func wallSpans(f *plan.Floor, bounds geometry.Bounds) map[string]wallSpan {
	spans := make(map[string]wallSpan)

	for i := range f.Rooms {
		r := &f.Rooms[i]
		spans[r.WallName(plan.DirNorth)] = wallSpan{start: r.X, end: r.X + r.Width, dir: plan.DirNorth}
		spans[r.WallName(plan.DirSouth)] = wallSpan{start: r.X, end: r.X + r.Width, dir: plan.DirSouth}
		spans[r.WallName(plan.DirEast)] = wallSpan{start: r.Y, end: r.Y + r.Length, dir: plan.DirEast}
		spans[r.WallName(plan.DirWest)] = wallSpan{start: r.Y, end: r.Y + r.Length, dir: plan.DirWest}
	}

	midX := (bounds.MinX + bounds.MaxX) / 2
	midY := (bounds.MinY + bounds.MaxY) / 2
	for i := range f.Walls {
		w := &f.Walls[i]
		if w.Name == "" {
			continue
		}
		switch {
		case math.Abs(w.EndY-w.StartY) < 0.01:
			dir := plan.DirSouth
			if w.StartY < midY {
				dir = plan.DirNorth
			}
			spans[w.Name] = wallSpan{start: math.Min(w.StartX, w.EndX), end: math.Max(w.StartX, w.EndX), dir: dir}
		case math.Abs(w.EndX-w.StartX) < 0.01:
			dir := plan.DirEast
			if w.StartX < midX {
				dir = plan.DirWest
			}
			spans[w.Name] = wallSpan{start: math.Min(w.StartY, w.EndY), end: math.Max(w.StartY, w.EndY), dir: dir}
		}
	}

	return spans
}

// openings draws running dimensions for doors and windows: each
// opening's position from the previous opening (or the inside face of
// the wall) and its width, closing with the remaining span to the far
// inside face.
func (d *dimensioner) openings(buf *bytes.Buffer, f *plan.Floor, bounds geometry.Bounds) {
	spans := wallSpans(f, bounds)

	byWall := make(map[string][]*plan.Opening)
	var wallOrder []string
	collect := func(os []plan.Opening) {
		for i := range os {
			o := &os[i]
			name := o.WallRef()
			if name == "" {
				continue
			}
			if _, ok := spans[name]; !ok {
				continue
			}
			if _, seen := byWall[name]; !seen {
				wallOrder = append(wallOrder, name)
			}
			byWall[name] = append(byWall[name], o)
		}
	}
	collect(f.Doors)
	collect(f.Windows)

	for _, name := range wallOrder {
		span := spans[name]
		os := byWall[name]
		horizontal := span.dir.Horizontal()
		sort.Slice(os, func(i, j int) bool {
			if horizontal {
				return os[i].X < os[j].X
			}
			return os[i].Y < os[j].Y
		})

		levels := openingLevels(os, horizontal)

		reference := span.start + d.thickness
		for i, o := range os {
			d.opening(buf, o, span.dir, levels[i], reference)
			if horizontal {
				reference = o.X + o.Width
			} else {
				reference = o.Y + o.Width
			}
		}

		d.closingRun(buf, os[len(os)-1], span, reference)
	}
}

// openingLevels stacks overlapping opening dimensions on one wall the
// same way perimeter dimensions stack, using pseudo edges along the
// wall axis.
func openingLevels(os []*plan.Opening, horizontal bool) []int {
	edges := make([]geometry.Edge, len(os))
	for i, o := range os {
		if horizontal {
			edges[i] = geometry.Edge{X1: o.X, Y1: o.Y, X2: o.X + o.Width, Y2: o.Y, Orientation: geometry.Horizontal}
		} else {
			edges[i] = geometry.Edge{X1: o.X, Y1: o.Y, X2: o.X, Y2: o.Y + o.Width, Orientation: geometry.Vertical}
		}
	}
	byKey := geometry.AssignLevels(edges)
	levels := make([]int, len(os))
	for i, e := range edges {
		levels[i] = byKey[e.Key()]
	}
	return levels
}

// minOpeningRun suppresses position dimensions when an opening starts
// at its reference point.
const minOpeningRun = 5.0

// opening draws the two dimensions for a door or window: the run from
// the reference point and the opening width in bold.
func (d *dimensioner) opening(buf *bytes.Buffer, o *plan.Opening, dir plan.Direction, level int, reference float64) {
	offset := d.cfg.OpeningOffset + float64(level)*d.cfg.OffsetIncrement*0.5
	size := d.cfg.OpeningTextSize
	outward := dir == plan.DirNorth || dir == plan.DirWest

	buf.WriteString(`<g class="opening-dimension">` + "\n")
	if dir.Horizontal() {
		posY := o.Y + offset
		if outward {
			posY = o.Y - offset
		}
		if math.Abs(o.X-reference) > minOpeningRun {
			d.runDim(buf, reference, o.X, o.Y, posY, true, outward, size, "#666", false)
		}

		widthY := o.Y + offset*1.8
		if outward {
			widthY = o.Y - offset*1.8
		}
		d.runDim(buf, o.X, o.X+o.Width, o.Y, widthY, true, outward, size, "#000", true)
	} else {
		posX := o.X + offset
		if outward {
			posX = o.X - offset
		}
		if math.Abs(o.Y-reference) > minOpeningRun {
			d.runDim(buf, reference, o.Y, o.X, posX, false, outward, size, "#666", false)
		}

		widthX := o.X + offset*1.8
		if outward {
			widthX = o.X - offset*1.8
		}
		d.runDim(buf, o.Y, o.Y+o.Width, o.X, widthX, false, outward, size, "#000", true)
	}
	buf.WriteString("</g>\n")
}

// closingRun draws the last span of a wall's running dimensions: from
// the end of the final opening to the inside face of the wall.
func (d *dimensioner) closingRun(buf *bytes.Buffer, last *plan.Opening, span wallSpan, reference float64) {
	insideEnd := span.end - d.thickness
	if insideEnd-reference <= minOpeningRun {
		return
	}
	size := d.cfg.OpeningTextSize
	outward := span.dir == plan.DirNorth || span.dir == plan.DirWest

	buf.WriteString(`<g class="opening-dimension">` + "\n")
	if span.dir.Horizontal() {
		posY := last.Y + d.cfg.OpeningOffset
		if outward {
			posY = last.Y - d.cfg.OpeningOffset
		}
		d.runDim(buf, reference, insideEnd, last.Y, posY, true, outward, size, "#666", false)
	} else {
		posX := last.X + d.cfg.OpeningOffset
		if outward {
			posX = last.X - d.cfg.OpeningOffset
		}
		d.runDim(buf, reference, insideEnd, last.X, posX, false, outward, size, "#666", false)
	}
	buf.WriteString("</g>\n")
}

// runDim draws one small running dimension between coordinates a and b
// along the wall axis. For horizontal walls wallCoord is the wall's y
// and dimCoord the offset line's y; for vertical walls they are x.
func (d *dimensioner) runDim(buf *bytes.Buffer, a, b, wallCoord, dimCoord float64, horizontal, outward bool, textSize float64, color string, bold bool) {
	text := d.fm.Format(math.Abs(b - a))
	weight := ""
	if bold {
		weight = ` font-weight="bold"`
	}
	const arrow = 2

	if horizontal {
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="0.3"/>`+"\n", a, dimCoord, b, dimCoord, color)
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="0.2" stroke-dasharray="1,1"/>`+"\n", a, wallCoord, a, dimCoord, color)
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="0.2" stroke-dasharray="1,1"/>`+"\n", b, wallCoord, b, dimCoord, color)
		fmt.Fprintf(buf, `  <polygon points="%g,%g %g,%g %g,%g" fill="%s"/>`+"\n",
			a, dimCoord, a+arrow, dimCoord-arrow/2.0, a+arrow, dimCoord+arrow/2.0, color)
		fmt.Fprintf(buf, `  <polygon points="%g,%g %g,%g %g,%g" fill="%s"/>`+"\n",
			b, dimCoord, b-arrow, dimCoord-arrow/2.0, b-arrow, dimCoord+arrow/2.0, color)

		textY := dimCoord + textSize + 1
		if outward {
			textY = dimCoord - 3
		}
		fmt.Fprintf(buf, `  <text x="%g" y="%g" text-anchor="middle" font-size="%g"%s fill="%s">%s</text>`+"\n",
			(a+b)/2, textY, textSize, weight, color, text)
	} else {
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="0.3"/>`+"\n", dimCoord, a, dimCoord, b, color)
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="0.2" stroke-dasharray="1,1"/>`+"\n", wallCoord, a, dimCoord, a, color)
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="0.2" stroke-dasharray="1,1"/>`+"\n", wallCoord, b, dimCoord, b, color)
		fmt.Fprintf(buf, `  <polygon points="%g,%g %g,%g %g,%g" fill="%s"/>`+"\n",
			dimCoord, a, dimCoord-arrow/2.0, a+arrow, dimCoord+arrow/2.0, a+arrow, color)
		fmt.Fprintf(buf, `  <polygon points="%g,%g %g,%g %g,%g" fill="%s"/>`+"\n",
			dimCoord, b, dimCoord-arrow/2.0, b-arrow, dimCoord+arrow/2.0, b-arrow, color)

		textX := dimCoord + textSize + 2
		if outward {
			textX = dimCoord - textSize - 2
		}
		midY := (a + b) / 2
		fmt.Fprintf(buf, `  <text x="%g" y="%g" text-anchor="middle" font-size="%g"%s fill="%s" transform="rotate(-90 %g %g)">%s</text>`+"\n",
			textX, midY, textSize, weight, color, textX, midY, text)
	}
}
