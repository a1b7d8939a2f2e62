package raster

import (
	"frender/pkg/geom"
)

// drawLine rasterizes l with Bresenham's algorithm. Both endpoints are
// drawn. The endpoints are put in a canonical order first so that a line
// and its reverse cover exactly the same pixels.
func drawLine(dst *Canvas, l geom.Line, o LineOptions) {
	off := o.pixelOffset()
	l.Start = l.Start.Add(off)
	l.End = l.End.Add(off)
	if l.End.Less(l.Start) {
		l = l.Reversed()
	}

	width := max(o.Width, 1)
	if width == 1 {
		bresenham(l, func(x, y int) { dst.SetPixel(x, y, o.Color) })
		return
	}

	// Thick lines repeat the pass shifted along the minor axis.
	step := geom.V(0, 1)
	if abs(l.End.Y-l.Start.Y) > abs(l.End.X-l.Start.X) {
		step = geom.V(1, 0)
	}
	first := -(width - 1) / 2
	for i := 0; i < width; i++ {
		shift := step.Scale(first + i)
		pass := geom.Line{Start: l.Start.Add(shift), End: l.End.Add(shift)}
		bresenham(pass, func(x, y int) { dst.SetPixel(x, y, o.Color) })
	}
}

// bresenham calls plot for every pixel from l.Start to l.End inclusive.
// It visits max(|dx|, |dy|)+1 pixels.
func bresenham(l geom.Line, plot func(x, y int)) {
	x1, y1 := l.Start.XY()
	x2, y2 := l.End.XY()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	x, y := x1, y1
	for {
		plot(x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
