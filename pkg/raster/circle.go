package raster

import (
	"fmt"

	"frender/pkg/geom"
)

// drawCircle rasterizes c with the midpoint algorithm. Each step of the
// first octant yields eight symmetric stroke pixels. When a fill is set the
// rows between the stroke pixels are filled; spans only cover pixels
// strictly inside the stroke.
func drawCircle(dst *Canvas, c geom.Circle, o CircleOptions) {
	if c.Radius < 0 {
		panic(fmt.Sprintf("raster: circle radius %d is negative", c.Radius))
	}

	cx, cy := c.Center.XY()
	stroke := o.Stroke
	fill := !o.Fill.IsTransparent()

	x, y := 0, c.Radius
	p := 1 - c.Radius

	for x <= y {
		dst.SetPixel(cx+x, cy+y, stroke)
		dst.SetPixel(cx-x, cy+y, stroke)
		dst.SetPixel(cx+x, cy-y, stroke)
		dst.SetPixel(cx-x, cy-y, stroke)
		dst.SetPixel(cx+y, cy+x, stroke)
		dst.SetPixel(cx-y, cy+x, stroke)
		dst.SetPixel(cx+y, cy-x, stroke)
		dst.SetPixel(cx-y, cy-x, stroke)

		// Only fill once the step has an interior to fill.
		if fill && x < y {
			dst.FillSpan(cx-x, cx+x+1, cy+y-1, o.Fill)
			dst.FillSpan(cx-x, cx+x+1, cy-y+1, o.Fill)
			dst.FillSpan(cx-y+1, cx+y, cy+x, o.Fill)
			dst.FillSpan(cx-y+1, cx+y, cy-x, o.Fill)
		}

		if p < 0 {
			p += 2*x + 3
		} else {
			p += 2*(x-y) + 5
			y--
		}
		x++
	}
}
