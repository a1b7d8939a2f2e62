package raster

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"

	"frender/pkg/geom"
)

// LineOptions controls how a line is drawn.
type LineOptions struct {
	Color Color

	// Width is the number of parallel one-pixel passes. Values below one
	// are treated as one.
	Width int

	// Offset shifts both endpoints before rasterizing. It is kept in 26.6
	// fixed point so that a half-pixel offset survives being scaled up and
	// lands on whole pixels once the line is drawn at a larger scale.
	Offset fixed.Point26_6
}

// LineStyle returns one-pixel wide line options.
func LineStyle(c Color) LineOptions {
	return LineOptions{Color: c, Width: 1}
}

// WithWidth sets the line width.
func (o LineOptions) WithWidth(w int) LineOptions {
	o.Width = w
	return o
}

// Middle shifts the line by half a pixel on both axes, so that once the
// line is scaled up it runs through the middle of the scaled pixels
// instead of along their top-left edges.
func (o LineOptions) Middle() LineOptions {
	o.Offset = fixed.Point26_6{X: 1 << 5, Y: 1 << 5}
	return o
}

// Centered reports whether a sub-pixel offset is set.
func (o LineOptions) Centered() bool {
	return o.Offset != fixed.Point26_6{}
}

func (o *LineOptions) scale(s geom.Vec2) {
	o.Offset.X *= fixed.Int26_6(s.X)
	o.Offset.Y *= fixed.Int26_6(s.Y)
}

// pixelOffset returns the offset floored to whole pixels.
func (o LineOptions) pixelOffset() geom.Vec2 {
	return geom.V(o.Offset.X.Floor(), o.Offset.Y.Floor())
}

// CircleOptions sets stroke and fill. A transparent fill disables filling.
type CircleOptions struct {
	Stroke Color
	Fill   Color
}

// CircleStyle returns stroke-only circle options.
func CircleStyle(stroke Color) CircleOptions {
	return CircleOptions{Stroke: stroke, Fill: Transparent}
}

// WithFill sets the fill color.
func (o CircleOptions) WithFill(c Color) CircleOptions {
	o.Fill = c
	return o
}

// RectOptions sets stroke and fill. Transparent parts are skipped.
type RectOptions struct {
	Stroke Color
	Fill   Color
}

// RectStyle returns stroke-only rectangle options.
func RectStyle(stroke Color) RectOptions {
	return RectOptions{Stroke: stroke}
}

// WithFill sets the fill color.
func (o RectOptions) WithFill(c Color) RectOptions {
	o.Fill = c
	return o
}

// TriangleOptions sets stroke and fill. Transparent parts are skipped.
type TriangleOptions struct {
	Stroke Color
	Fill   Color
}

// TriangleStyle returns stroke-only triangle options.
func TriangleStyle(stroke Color) TriangleOptions {
	return TriangleOptions{Stroke: stroke}
}

// WithFill sets the fill color.
func (o TriangleOptions) WithFill(c Color) TriangleOptions {
	o.Fill = c
	return o
}

// ImageOptions places a blitted canvas.
type ImageOptions struct {
	Destination geom.Vec2
	Scaling     geom.Vec2
}

// At returns options blitting at (x, y) without scaling.
func At(x, y int) ImageOptions {
	return ImageOptions{Destination: geom.V(x, y), Scaling: geom.One()}
}

// Scale sets a uniform integer scale factor.
func (o ImageOptions) Scale(k int) ImageOptions {
	o.Scaling = geom.Splat(k)
	return o
}

// ScaleBy sets a uniform scale factor given as a float. Blitting only
// supports whole factors of at least one; anything else panics.
func (o ImageOptions) ScaleBy(f float64) ImageOptions {
	if f < 1 || f != math.Trunc(f) || f > math.MaxInt32 {
		panic(fmt.Sprintf("raster: image scale %v is not an integer >= 1", f))
	}
	return o.Scale(int(f))
}
