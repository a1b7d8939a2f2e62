// Package raster is a small software rasterizer. A Canvas owns a flat
// buffer of ARGB pixels plus a view (clip rectangle and transform) and a
// queue of deferred marker commands.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"frender/pkg/geom"
)

// Canvas is a drawing surface. The zero value is an empty 0x0 canvas.
type Canvas struct {
	buffer []Color
	width  int
	height int

	view    View
	saved   viewStack
	markers []Command
}

// New creates a canvas of the given size filled with Transparent.
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: negative canvas size %dx%d", width, height))
	}
	return &Canvas{
		buffer: make([]Color, width*height),
		width:  width,
		height: height,
		view:   View{clip: geom.R(0, 0, width, height)},
	}
}

// FromBuffer wraps an existing row-major buffer. It panics if the buffer
// length does not equal width*height.
func FromBuffer(width, height int, buffer []Color) *Canvas {
	if width < 0 || height < 0 || len(buffer) != width*height {
		panic(fmt.Sprintf("raster: buffer of %d pixels does not match %dx%d", len(buffer), width, height))
	}
	return &Canvas{
		buffer: buffer,
		width:  width,
		height: height,
		view:   View{clip: geom.R(0, 0, width, height)},
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// SizeVec returns the size as a vector.
func (c *Canvas) SizeVec() geom.Vec2 {
	return geom.V(c.width, c.height)
}

// Rect returns the full canvas rectangle.
func (c *Canvas) Rect() geom.Rect {
	return geom.R(0, 0, c.width, c.height)
}

// Buffer returns the backing pixels in row-major order. Callers must not
// change its length.
func (c *Canvas) Buffer() []Color {
	return c.buffer
}

// Index returns the buffer index of (x, y), or false when out of bounds.
func (c *Canvas) Index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0, false
	}
	return y*c.width + x, true
}

// Pixel returns the color at (x, y). ok is false out of bounds.
func (c *Canvas) Pixel(x, y int) (Color, bool) {
	i, ok := c.Index(x, y)
	if !ok {
		return Transparent, false
	}
	return c.buffer[i], true
}

// SetPixel writes a single pixel. Out-of-bounds writes are ignored and
// report false.
func (c *Canvas) SetPixel(x, y int, col Color) bool {
	i, ok := c.Index(x, y)
	if !ok {
		return false
	}
	c.buffer[i] = col
	return true
}

// Span returns the pixels of row y in the half-open range [x0, x1),
// clipped to the canvas. The slice aliases the buffer. It is empty when
// nothing of the range is on the canvas.
func (c *Canvas) Span(x0, x1, y int) []Color {
	if y < 0 || y >= c.height {
		return nil
	}
	x0 = max(x0, 0)
	x1 = min(x1, c.width)
	if x1 <= x0 {
		return nil
	}
	row := y * c.width
	return c.buffer[row+x0 : row+x1]
}

// FillSpan sets [x0, x1) of row y to col, clipped to the canvas.
func (c *Canvas) FillSpan(x0, x1, y int, col Color) {
	span := c.Span(x0, x1, y)
	for i := range span {
		span[i] = col
	}
}

// View returns the canvas view for adjusting clip and transform.
func (c *Canvas) View() *View {
	return &c.view
}

// SetClip sets the clip rectangle, clamped to the canvas.
func (c *Canvas) SetClip(r geom.Rect) {
	c.view.clip = r.Intersect(c.Rect())
}

// ResetClip makes the clip cover the whole canvas.
func (c *Canvas) ResetClip() {
	c.view.clip = c.Rect()
}

// SetTransform activates a view transform.
func (c *Canvas) SetTransform(t geom.Transform2D) {
	c.view.SetTransform(t)
}

// ClearTransform removes the view transform.
func (c *Canvas) ClearTransform() {
	c.view.ClearTransform()
}

// SaveView pushes the current view.
func (c *Canvas) SaveView() {
	c.saved.push(c.view)
}

// RestoreView pops the most recently saved view. It is a no-op when
// nothing was saved.
func (c *Canvas) RestoreView() {
	if v, ok := c.saved.pop(); ok {
		c.view = v
	}
}

// ViewDepth returns the number of saved views.
func (c *Canvas) ViewDepth() int {
	return c.saved.depth()
}

// With runs fn with t applied on top of the current view transform and
// restores the view afterwards.
func (c *Canvas) With(t geom.Transform2D, fn func(c *Canvas)) {
	c.SaveView()
	defer c.RestoreView()
	if cur, ok := c.view.Transform(); ok {
		t = t.Then(cur)
	}
	c.view.SetTransform(t)
	fn(c)
}

// Draw transforms cmd by the view transform, if any, and rasterizes it.
func (c *Canvas) Draw(cmd Command) {
	if t, ok := c.view.Transform(); ok {
		cmd.Transform(t)
	}
	cmd.Render(c)
}

// Marker transforms cmd like Draw but queues a copy of it instead of
// rasterizing. Queued markers are drawn by RenderMarkers.
func (c *Canvas) Marker(cmd Command) {
	if t, ok := c.view.Transform(); ok {
		cmd.Transform(t)
	}
	c.markers = append(c.markers, cmd.Clone())
}

// RenderMarkers rasterizes queued markers in the order they were added and
// empties the queue. Markers that an image marker migrates onto c while
// replaying are drawn in a further pass, after everything queued before them.
func (c *Canvas) RenderMarkers() {
	for len(c.markers) > 0 {
		markers := c.markers
		c.markers = nil
		Logger().Debug("raster: render markers", "count", len(markers))
		for _, m := range markers {
			m.Render(c)
		}
	}
}

// ClearMarkers drops queued markers without drawing them.
func (c *Canvas) ClearMarkers() {
	c.markers = nil
}

// Markers returns the number of queued markers.
func (c *Canvas) Markers() int {
	return len(c.markers)
}

// Clone returns a deep copy of the pixels, view and marker queue.
func (c *Canvas) Clone() *Canvas {
	out := &Canvas{
		buffer: append([]Color(nil), c.buffer...),
		width:  c.width,
		height: c.height,
		view:   c.view.clone(),
	}
	for _, v := range c.saved.views {
		out.saved.push(v)
	}
	out.markers = cloneCommands(c.markers)
	return out
}

// Background fills the clip rectangle.
func (c *Canvas) Background(col Color) {
	c.Draw(BackgroundCommand(col))
}

// Line draws the line from (x1, y1) to (x2, y2).
func (c *Canvas) Line(x1, y1, x2, y2 int, opts LineOptions) {
	c.Draw(LineCommand(geom.L(x1, y1, x2, y2), opts))
}

// Circle draws the circle centered at (x, y).
func (c *Canvas) Circle(x, y, r int, opts CircleOptions) {
	c.Draw(CircleCommand(geom.C(x, y, r), opts))
}

// Rectangle draws the w by h rectangle at (x, y).
func (c *Canvas) Rectangle(x, y, w, h int, opts RectOptions) {
	c.Draw(RectCommand(geom.R(x, y, w, h), opts))
}

// Triangle draws the triangle a, b, cc.
func (c *Canvas) Triangle(a, b, cc geom.Vec2, opts TriangleOptions) {
	c.Draw(TriangleCommand(geom.T(a, b, cc), opts))
}

// Image blits src at (x, y), scaled by an integer factor.
func (c *Canvas) Image(src *Canvas, x, y, scale int) {
	c.Draw(ImageCommand(src, At(x, y).Scale(scale)))
}

// The Canvas satisfies image.Image so it can be handed to encoders and
// windowing code directly. At reports opaque colors: alpha only steers
// blitting and is not part of the presented frame.

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	col, _ := c.Pixel(x, y)
	return col.Opaque().NRGBA()
}

// ToNRGBA converts the buffer to an opaque *image.NRGBA.
func (c *Canvas) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	c.CopyTo(img)
	return img
}

// CopyTo writes the opaque pixels into dst, which must have the same size.
func (c *Canvas) CopyTo(dst *image.NRGBA) {
	if b := dst.Bounds(); b.Dx() != c.width || b.Dy() != c.height {
		panic(fmt.Sprintf("raster: copy %dx%d canvas into %dx%d image", c.width, c.height, b.Dx(), b.Dy()))
	}
	for y := 0; y < c.height; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+c.width*4]
		for x, col := range c.buffer[y*c.width : (y+1)*c.width] {
			row[x*4+0] = col.R()
			row[x*4+1] = col.G()
			row[x*4+2] = col.B()
			row[x*4+3] = 0xFF
		}
	}
}
