package demo

import (
	"frender/internal/input"
	"frender/pkg/geom"
	"frender/pkg/raster"
)

// Builder lets the user place lines with the mouse: the first click fixes
// the start point, the second commits the line. C clears the drawing.
//
// Click edges are detected against pressed, the button state seen on the
// previous frame.
type Builder struct {
	lines   []geom.Line
	points  []geom.Vec2 // 1 while choosing the start, 2 while choosing the end
	pressed bool
}

// NewBuilder returns the shape builder demo. It is meant to be shown
// through Scaled.
func NewBuilder() *Builder { return &Builder{} }

func (d *Builder) Name() string { return "builder" }

// Lines returns the committed lines.
func (d *Builder) Lines() []geom.Line { return d.lines }

func (d *Builder) Update(in input.Snapshot) {
	if in.JustPressed("C") {
		d.lines = nil
		d.points = nil
	}

	pos := in.Mouse()
	if d.points == nil {
		d.points = []geom.Vec2{pos}
	}

	down := in.ButtonPressed(input.MouseLeft) || in.ButtonJustPressed(input.MouseLeft)
	if down && !d.pressed {
		d.commit()
	} else {
		d.points[len(d.points)-1] = pos
	}
	d.pressed = down
}

func (d *Builder) commit() {
	switch len(d.points) {
	case 1:
		d.points = []geom.Vec2{d.points[0], d.points[0]}
	default:
		d.lines = append(d.lines, geom.Line{Start: d.points[0], End: d.points[1]})
		d.points = nil
	}
}

func (d *Builder) Render(c *raster.Canvas) {
	style := raster.LineStyle(raster.Red)
	if len(d.points) > 0 {
		p := d.points[0]
		q := d.points[len(d.points)-1]
		c.Draw(raster.LineCommand(geom.Line{Start: p, End: q}, style))
	}
	for _, l := range d.lines {
		c.Draw(raster.LineCommand(l, style))
	}
}
