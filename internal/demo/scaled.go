package demo

import (
	"frender/internal/input"
	"frender/pkg/raster"
	"frender/pkg/scene"
)

// Scaled shows an inner demo magnified: the inner demo draws into a canvas
// 1/Scale the size of the frame, which is then blitted at Scale with a grid
// outlining every source pixel. Markers queued by the inner demo are drawn
// over the grid at frame resolution.
type Scaled struct {
	Inner App
	Scale int

	buffer *raster.Canvas
}

// NewScaled wraps inner in a scale x preview.
func NewScaled(inner App, scale int) *Scaled {
	if scale < 1 {
		scale = DefaultScale
	}
	return &Scaled{Inner: inner, Scale: scale}
}

func (s *Scaled) Name() string { return s.Inner.Name() }

// Update forwards input with the pointer in inner canvas pixels.
func (s *Scaled) Update(in input.Snapshot) {
	s.Inner.Update(in.Scaled(s.Scale))
}

func (s *Scaled) Render(c *raster.Canvas) {
	c.Background(raster.Black)

	width, height := c.Size()
	w, h := width/s.Scale, height/s.Scale
	if s.buffer == nil || s.buffer.Width() != w || s.buffer.Height() != h {
		s.buffer = raster.New(w, h)
	}
	s.buffer.ClearMarkers()
	s.buffer.ClearTransform()
	s.buffer.Background(raster.Black)

	s.Inner.Render(s.buffer)

	c.Image(s.buffer, 0, 0, s.Scale)
	scene.DrawGrid(c, s.Scale, raster.Gray)
}
