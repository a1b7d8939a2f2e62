package scene

import (
	"frender/pkg/geom"
	"frender/pkg/raster"
)

// Builder provides a fluent interface for assembling scenes in code.
type Builder struct {
	scene *Scene
	ops   *[]Op
}

// NewBuilder starts a scene of the given size.
func NewBuilder(width, height int) *Builder {
	s := &Scene{Width: width, Height: height}
	return &Builder{scene: s, ops: &s.Ops}
}

// Scaled renders the scene k times larger, optionally with a cell grid.
func (b *Builder) Scaled(k int, grid bool) *Builder {
	b.scene.Scale = k
	b.scene.Grid = grid
	return b
}

// Layer adds a named layer and runs fn with a builder for it.
func (b *Builder) Layer(name string, width, height int, fn func(lb *Builder)) *Builder {
	if b.scene.Layers == nil {
		b.scene.Layers = make(map[string]Layer)
	}
	var ops []Op
	fn(&Builder{scene: b.scene, ops: &ops})
	b.scene.Layers[name] = Layer{Width: width, Height: height, Ops: ops}
	return b
}

func (b *Builder) add(op Op) *Builder {
	*b.ops = append(*b.ops, op)
	return b
}

// Marker turns the most recently added drawing operation into a marker.
func (b *Builder) Marker() *Builder {
	if n := len(*b.ops); n > 0 {
		(*b.ops)[n-1].Marker = true
	}
	return b
}

// Middle offsets the most recently added line by half a pixel.
func (b *Builder) Middle() *Builder {
	if n := len(*b.ops); n > 0 {
		(*b.ops)[n-1].Middle = true
	}
	return b
}

// Background fills the clip rectangle.
func (b *Builder) Background(c raster.Color) *Builder {
	return b.add(Op{Op: OpBackground, Color: c.String()})
}

// Line draws a line.
func (b *Builder) Line(x1, y1, x2, y2 int, c raster.Color) *Builder {
	return b.add(Op{Op: OpLine, From: []int{x1, y1}, To: []int{x2, y2}, Color: c.String()})
}

// Circle draws a circle. A transparent fill leaves it hollow.
func (b *Builder) Circle(x, y, r int, stroke, fill raster.Color) *Builder {
	op := Op{Op: OpCircle, Center: []int{x, y}, Radius: r, Stroke: stroke.String()}
	if !fill.IsTransparent() {
		op.Fill = fill.String()
	}
	return b.add(op)
}

// Rect draws a rectangle.
func (b *Builder) Rect(x, y, w, h int, stroke, fill raster.Color) *Builder {
	op := Op{Op: OpRect, At: []int{x, y}, Size: []int{w, h}, Stroke: stroke.String()}
	if !fill.IsTransparent() {
		op.Fill = fill.String()
	}
	return b.add(op)
}

// Triangle draws a triangle.
func (b *Builder) Triangle(p1, p2, p3 geom.Vec2, stroke, fill raster.Color) *Builder {
	op := Op{Op: OpTriangle, Points: [][]int{{p1.X, p1.Y}, {p2.X, p2.Y}, {p3.X, p3.Y}}, Stroke: stroke.String()}
	if !fill.IsTransparent() {
		op.Fill = fill.String()
	}
	return b.add(op)
}

// Image blits a layer.
func (b *Builder) Image(layer string, x, y, factor int) *Builder {
	return b.add(Op{Op: OpImage, Layer: layer, At: []int{x, y}, Factor: factor})
}

// Transform composes t onto the current view transform.
func (b *Builder) Transform(t geom.Transform2D) *Builder {
	return b.add(Op{
		Op:        OpTransform,
		Translate: []int{t.Translation.X, t.Translation.Y},
		ScaleBy:   []int{t.Scaling.X, t.Scaling.Y},
	})
}

// ResetTransform removes the view transform.
func (b *Builder) ResetTransform() *Builder {
	return b.add(Op{Op: OpResetTransform})
}

// Clip sets the clip rectangle.
func (b *Builder) Clip(x, y, w, h int) *Builder {
	return b.add(Op{Op: OpClip, Rect: []int{x, y, w, h}})
}

// Push saves the view.
func (b *Builder) Push() *Builder {
	return b.add(Op{Op: OpPush})
}

// Pop restores the view.
func (b *Builder) Pop() *Builder {
	return b.add(Op{Op: OpPop})
}

// RenderMarkers replays queued markers.
func (b *Builder) RenderMarkers() *Builder {
	return b.add(Op{Op: OpRenderMarkers})
}

// Build returns the assembled scene.
func (b *Builder) Build() *Scene {
	return b.scene
}
