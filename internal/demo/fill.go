package demo

import (
	"frender/internal/input"
	"frender/pkg/geom"
	"frender/pkg/raster"
)

// Fill draws a filled circle and two diagonals, each diagonal repeated as
// a centered marker so the preview shows where the pixel centers lie.
type Fill struct{}

// NewFill returns the fill demo. It is meant to be shown through Scaled.
func NewFill() *Fill { return &Fill{} }

func (d *Fill) Name() string { return "fill" }

func (d *Fill) Update(input.Snapshot) {}

func (d *Fill) Render(c *raster.Canvas) {
	w, h := c.Size()

	c.Circle(5, 20, 5, raster.CircleStyle(raster.Red).WithFill(raster.RGB(96, 0, 0)))

	marker := raster.LineStyle(raster.Red).Middle()
	for _, l := range []geom.Line{
		geom.L(1, 1, w-2, h-2),
		geom.L(1, h-2, w-2, 1),
	} {
		c.Draw(raster.LineCommand(l, raster.LineStyle(raster.White)))
		c.Marker(raster.LineCommand(l, marker))
	}
}
