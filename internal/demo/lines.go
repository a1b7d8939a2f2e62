package demo

import (
	"frender/internal/input"
	"frender/pkg/geom"
	"frender/pkg/raster"
)

// Lines draws a 5x5 grid of small canvases, each holding one line from
// the origin. The last cell is blitted under a 5x view transform and
// carries its line as a marker, so the marker lands thin on top of the
// enlarged cell.
type Lines struct {
	cell *raster.Canvas
}

const (
	linesCols  = 5
	linesRows  = 5
	linesScale = 10
)

// NewLines returns the lines demo.
func NewLines() *Lines { return &Lines{} }

func (d *Lines) Name() string { return "lines" }

func (d *Lines) Update(input.Snapshot) {}

func (d *Lines) Render(c *raster.Canvas) {
	c.Background(raster.Black)

	width, height := c.Size()
	w, h := width/linesScale, height/linesScale
	if w < 1 || h < 1 {
		return
	}
	if d.cell == nil || d.cell.Width() != w || d.cell.Height() != h {
		d.cell = raster.New(w, h)
	}
	c.ClearTransform()

	grid := raster.LineStyle(raster.Gray)
	for x := 0; x < linesCols; x++ {
		c.Line(x*(w+2), 0, x*(w+2), height, grid)
		c.Line(x*(w+2)+w+1, 0, x*(w+2)+w+1, height, grid)
	}
	for y := 0; y < linesRows; y++ {
		c.Line(0, y*(h+2), width, y*(h+2), grid)
		c.Line(0, y*(h+2)+h+1, width, y*(h+2)+h+1, grid)
	}

	for x := 0; x < linesCols; x++ {
		for y := 0; y < linesRows; y++ {
			d.cell.Background(raster.Black)
			d.cell.Line(0, 0, x*5, y*5, raster.LineStyle(raster.White))

			xp := x*(w+2) + 1
			yp := y*(h+2) + 1

			if x == linesCols-1 && y == linesRows-1 {
				d.cell.Marker(raster.LineCommand(geom.L(0, 0, x*5, y*5), raster.LineStyle(raster.Red)))
				c.SetTransform(geom.NewTransform(geom.V(-xp*4, -yp*4), geom.Splat(5)))
			}
			c.Image(d.cell, xp, yp, 1)
			d.cell.ClearMarkers()
			c.ClearTransform()
		}
	}
}
