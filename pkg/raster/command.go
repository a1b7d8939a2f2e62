package raster

import (
	"fmt"

	"frender/pkg/geom"
)

// Kind identifies which shape a Command carries.
type Kind uint8

const (
	KindBackground Kind = iota
	KindLine
	KindRect
	KindCircle
	KindTriangle
	KindImage
)

var kindNames = [...]string{
	KindBackground: "background",
	KindLine:       "line",
	KindRect:       "rect",
	KindCircle:     "circle",
	KindTriangle:   "triangle",
	KindImage:      "image",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Command is a shape bound to its drawing options. Commands can be
// transformed, rasterized into a canvas and cloned. Only the fields of the
// active Kind are meaningful.
type Command struct {
	kind Kind

	background Color

	line     geom.Line
	lineOpts LineOptions

	rect     geom.Rect
	rectOpts RectOptions

	circle     geom.Circle
	circleOpts CircleOptions

	triangle     geom.Triangle
	triangleOpts TriangleOptions

	image *imageData
}

// BackgroundCommand fills the clip rectangle of the target canvas.
func BackgroundCommand(c Color) Command {
	return Command{kind: KindBackground, background: c}
}

// LineCommand draws l.
func LineCommand(l geom.Line, o LineOptions) Command {
	return Command{kind: KindLine, line: l, lineOpts: o}
}

// RectCommand draws r.
func RectCommand(r geom.Rect, o RectOptions) Command {
	return Command{kind: KindRect, rect: r, rectOpts: o}
}

// CircleCommand draws c.
func CircleCommand(c geom.Circle, o CircleOptions) Command {
	return Command{kind: KindCircle, circle: c, circleOpts: o}
}

// TriangleCommand draws t.
func TriangleCommand(t geom.Triangle, o TriangleOptions) Command {
	return Command{kind: KindTriangle, triangle: t, triangleOpts: o}
}

// ImageCommand blits src. The markers queued on src are copied into the
// command, moved into destination space, and handed to the target canvas
// when the command renders. src itself keeps its queue.
func ImageCommand(src *Canvas, o ImageOptions) Command {
	d := &imageData{src: src, opts: o}
	if len(src.markers) > 0 {
		blit := geom.NewTransform(o.Destination, o.Scaling)
		d.markers = cloneCommands(src.markers)
		for i := range d.markers {
			d.markers[i].Transform(blit)
		}
	}
	return Command{kind: KindImage, image: d}
}

// Kind returns the shape kind.
func (c Command) Kind() Kind {
	return c.kind
}

// Line returns the line of a KindLine command.
func (c Command) Line() (geom.Line, LineOptions) { return c.line, c.lineOpts }

// Rect returns the rectangle of a KindRect command.
func (c Command) Rect() (geom.Rect, RectOptions) { return c.rect, c.rectOpts }

// Circle returns the circle of a KindCircle command.
func (c Command) Circle() (geom.Circle, CircleOptions) { return c.circle, c.circleOpts }

// Triangle returns the triangle of a KindTriangle command.
func (c Command) Triangle() (geom.Triangle, TriangleOptions) { return c.triangle, c.triangleOpts }

// Transform applies t in place. Positions use the full transform, sizes
// only its scaling part.
func (c *Command) Transform(t geom.Transform2D) {
	switch c.kind {
	case KindBackground:
	case KindLine:
		c.line.Transform(t)
		c.lineOpts.scale(t.Scaling)
	case KindRect:
		c.rect.Transform(t)
	case KindCircle:
		if !t.IsUniform() {
			Logger().Warn("raster: non-uniform circle scaling uses the x factor",
				"scaling", t.Scaling.String())
		}
		c.circle.Transform(t)
	case KindTriangle:
		c.triangle.Transform(t)
	case KindImage:
		c.image = c.image.transformed(t)
	}
}

// Render rasterizes the command into dst.
func (c *Command) Render(dst *Canvas) {
	switch c.kind {
	case KindBackground:
		fillBackground(dst, c.background)
	case KindLine:
		drawLine(dst, c.line, c.lineOpts)
	case KindRect:
		drawRect(dst, c.rect, c.rectOpts)
	case KindCircle:
		drawCircle(dst, c.circle, c.circleOpts)
	case KindTriangle:
		drawTriangle(dst, c.triangle, c.triangleOpts)
	case KindImage:
		c.image.render(dst)
	}
}

// Clone returns an independent copy. Image commands take a snapshot of
// their source pixels so the copy stays valid after the source changes.
func (c Command) Clone() Command {
	if c.kind == KindImage {
		c.image = c.image.clone()
	}
	return c
}

func (c Command) String() string {
	switch c.kind {
	case KindBackground:
		return fmt.Sprintf("background %v", c.background)
	case KindLine:
		return fmt.Sprintf("line %v-%v %v", c.line.Start, c.line.End, c.lineOpts.Color)
	case KindRect:
		return fmt.Sprintf("rect %v %v", c.rect.Pos, c.rect.Size)
	case KindCircle:
		return fmt.Sprintf("circle %v r=%d", c.circle.Center, c.circle.Radius)
	case KindTriangle:
		return fmt.Sprintf("triangle %v %v %v", c.triangle.A, c.triangle.B, c.triangle.C)
	case KindImage:
		return fmt.Sprintf("image %dx%d at %v x%v", c.image.src.width, c.image.src.height,
			c.image.opts.Destination, c.image.opts.Scaling)
	}
	return c.kind.String()
}

func cloneCommands(cmds []Command) []Command {
	if len(cmds) == 0 {
		return nil
	}
	out := make([]Command, len(cmds))
	for i, cmd := range cmds {
		out[i] = cmd.Clone()
	}
	return out
}
