package scene

import (
	"fmt"

	"frender/pkg/geom"
	"frender/pkg/raster"
)

// maxLayerDepth bounds nested layer blits.
const maxLayerDepth = 16

// Interpreter replays scene operations onto canvases.
type Interpreter struct {
	scene *Scene

	// OnOp is called before each operation runs. Layer operations are
	// reported with the layer name, top-level ones with "".
	OnOp func(layer string, index int, op Op)

	active map[string]bool
	layers map[string]*raster.Canvas
}

// NewInterpreter creates an interpreter for s.
func NewInterpreter(s *Scene) *Interpreter {
	return &Interpreter{
		scene:  s,
		active: make(map[string]bool),
		layers: make(map[string]*raster.Canvas),
	}
}

// Render draws the scene into a new canvas of the scene's output size and
// replays all pending markers, so the result is a finished frame.
func (in *Interpreter) Render() (*raster.Canvas, error) {
	c, err := in.RenderPending()
	if err != nil {
		return nil, err
	}
	c.RenderMarkers()
	return c, nil
}

// RenderPending is Render without the final marker replay. Markers still
// queued at the end of the scene stay on the returned canvas, so a caller
// that blits the frame again carries them along.
func (in *Interpreter) RenderPending() (*raster.Canvas, error) {
	s := in.scene
	if err := s.CheckSize(); err != nil {
		return nil, err
	}
	c := raster.New(s.Width, s.Height)
	if err := in.Execute(c, "", s.Ops); err != nil {
		return nil, err
	}
	if s.Scale <= 1 {
		return c, nil
	}

	w, h := s.OutputSize()
	out := raster.New(w, h)
	out.Background(raster.Black)
	out.Image(c, 0, 0, s.Scale)
	if s.Grid {
		DrawGrid(out, s.Scale, raster.Gray)
	}
	return out, nil
}

// Render is shorthand for NewInterpreter(s).Render().
func (s *Scene) Render() (*raster.Canvas, error) {
	return NewInterpreter(s).Render()
}

// Execute runs ops against c. It stops at the first failing operation.
func (in *Interpreter) Execute(c *raster.Canvas, layer string, ops []Op) error {
	for i, op := range ops {
		if in.OnOp != nil {
			in.OnOp(layer, i, op)
		}
		if err := in.run(c, op); err != nil {
			if layer != "" {
				return fmt.Errorf("layer %q op %d (%s): %w", layer, i, op.Op, err)
			}
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}
	return nil
}

// run executes one operation. Scene files are input, so a rasterizer
// precondition failure (say, a transform that flips a circle radius
// negative) is reported as an error instead of crashing.
func (in *Interpreter) run(c *raster.Canvas, op Op) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return in.executeOp(c, op)
}

func (in *Interpreter) executeOp(c *raster.Canvas, op Op) error {
	switch op.Op {
	case OpBackground:
		col, err := ParseColor(op.Color, raster.Black)
		if err != nil {
			return err
		}
		in.emit(c, op, raster.BackgroundCommand(col))

	case OpLine:
		from, to, err := points2(op.From, op.To)
		if err != nil {
			return err
		}
		col, err := ParseColor(op.Color, raster.White)
		if err != nil {
			return err
		}
		opts := raster.LineStyle(col).WithWidth(max(op.Width, 1))
		if op.Middle {
			opts = opts.Middle()
		}
		in.emit(c, op, raster.LineCommand(geom.Line{Start: from, End: to}, opts))

	case OpCircle:
		center, err := point(op.Center)
		if err != nil {
			return err
		}
		stroke, fill, err := strokeFill(op)
		if err != nil {
			return err
		}
		in.emit(c, op, raster.CircleCommand(geom.Circle{Center: center, Radius: op.Radius},
			raster.CircleStyle(stroke).WithFill(fill)))

	case OpRect:
		at, size, err := points2(op.At, op.Size)
		if err != nil {
			return err
		}
		stroke, fill, err := strokeFill(op)
		if err != nil {
			return err
		}
		in.emit(c, op, raster.RectCommand(geom.Rect{Pos: at, Size: size},
			raster.RectStyle(stroke).WithFill(fill)))

	case OpTriangle:
		if len(op.Points) != 3 {
			return fmt.Errorf("triangle needs 3 points, got %d", len(op.Points))
		}
		var pts [3]geom.Vec2
		for i, p := range op.Points {
			v, err := point(p)
			if err != nil {
				return err
			}
			pts[i] = v
		}
		stroke, fill, err := strokeFill(op)
		if err != nil {
			return err
		}
		in.emit(c, op, raster.TriangleCommand(geom.T(pts[0], pts[1], pts[2]),
			raster.TriangleStyle(stroke).WithFill(fill)))

	case OpImage:
		at, err := point(op.At)
		if err != nil {
			return err
		}
		src, err := in.renderLayer(op.Layer)
		if err != nil {
			return err
		}
		in.emit(c, op, raster.ImageCommand(src, raster.At(at.X, at.Y).Scale(max(op.Factor, 1))))

	case OpTransform:
		t := geom.Identity()
		if op.Translate != nil {
			v, err := point(op.Translate)
			if err != nil {
				return err
			}
			t.Translation = v
		}
		if op.ScaleBy != nil {
			v, err := point(op.ScaleBy)
			if err != nil {
				return err
			}
			t.Scaling = v
		}
		if cur, ok := c.View().Transform(); ok {
			t = t.Then(cur)
		}
		c.SetTransform(t)

	case OpResetTransform:
		c.ClearTransform()

	case OpClip:
		if len(op.Rect) != 4 {
			return fmt.Errorf("clip needs [x, y, w, h], got %v", op.Rect)
		}
		c.SetClip(geom.R(op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3]))

	case OpResetClip:
		c.ResetClip()

	case OpPush:
		c.SaveView()

	case OpPop:
		c.RestoreView()

	case OpRenderMarkers:
		c.RenderMarkers()

	case OpClearMarkers:
		c.ClearMarkers()

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
	return nil
}

func (in *Interpreter) emit(c *raster.Canvas, op Op, cmd raster.Command) {
	if op.Marker {
		c.Marker(cmd)
		return
	}
	c.Draw(cmd)
}

// renderLayer draws a layer into its own canvas. Its markers stay queued
// so that blitting it carries them into the parent. Each layer is drawn
// once per interpreter; image commands only read the cached canvas.
func (in *Interpreter) renderLayer(name string) (*raster.Canvas, error) {
	if c, ok := in.layers[name]; ok {
		return c, nil
	}
	l, ok := in.scene.Layers[name]
	if !ok {
		return nil, fmt.Errorf("unknown layer %q", name)
	}
	if in.active[name] {
		return nil, fmt.Errorf("layer %q includes itself", name)
	}
	if len(in.active) >= maxLayerDepth {
		return nil, fmt.Errorf("layers nested deeper than %d", maxLayerDepth)
	}
	in.active[name] = true
	defer delete(in.active, name)

	if !FitsSide(l.Width, 1) || !FitsSide(l.Height, 1) {
		return nil, fmt.Errorf("%w: layer %q is %dx%d", ErrInvalidScene, name, l.Width, l.Height)
	}
	c := raster.New(l.Width, l.Height)
	if err := in.Execute(c, name, l.Ops); err != nil {
		return nil, err
	}
	in.layers[name] = c
	return c, nil
}

// DrawGrid outlines every scale x scale cell of c, the way a scaled preview
// shows pixel boundaries.
func DrawGrid(c *raster.Canvas, scale int, col raster.Color) {
	if scale <= 1 {
		return
	}
	w, h := c.Size()
	style := raster.LineStyle(col)
	for x := 0; x < w/scale; x++ {
		x1 := x * scale
		x2 := x1 + scale - 1
		c.Line(x1, 0, x1, h, style)
		c.Line(x2, 0, x2, h, style)
	}
	for y := 0; y < h/scale; y++ {
		y1 := y * scale
		y2 := y1 + scale - 1
		c.Line(0, y1, w, y1, style)
		c.Line(0, y2, w, y2, style)
	}
}

func point(v []int) (geom.Vec2, error) {
	if len(v) != 2 {
		return geom.Vec2{}, fmt.Errorf("expected [x, y], got %v", v)
	}
	return geom.V(v[0], v[1]), nil
}

func points2(a, b []int) (geom.Vec2, geom.Vec2, error) {
	va, err := point(a)
	if err != nil {
		return geom.Vec2{}, geom.Vec2{}, err
	}
	vb, err := point(b)
	if err != nil {
		return geom.Vec2{}, geom.Vec2{}, err
	}
	return va, vb, nil
}

func strokeFill(op Op) (raster.Color, raster.Color, error) {
	stroke, err := ParseColor(firstNonEmpty(op.Stroke, op.Color), raster.White)
	if err != nil {
		return 0, 0, err
	}
	fill, err := ParseColor(op.Fill, raster.Transparent)
	if err != nil {
		return 0, 0, err
	}
	return stroke, fill, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
