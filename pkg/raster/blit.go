package raster

import (
	"fmt"

	"frender/pkg/geom"
)

// imageData is the payload of a KindImage command.
type imageData struct {
	src     *Canvas
	opts    ImageOptions
	markers []Command
}

// transformed returns a transformed copy so commands sharing the payload
// are not affected.
func (d *imageData) transformed(t geom.Transform2D) *imageData {
	out := &imageData{
		src:     d.src,
		opts:    d.opts,
		markers: cloneCommands(d.markers),
	}
	for i := range out.markers {
		out.markers[i].Transform(t)
	}
	out.opts.Destination = t.Apply(out.opts.Destination)
	out.opts.Scaling = t.ScalingPart().Apply(out.opts.Scaling)
	if out.opts.Scaling.X < 1 || out.opts.Scaling.Y < 1 {
		panic(fmt.Sprintf("raster: transform %v gives image scale %v, want integers >= 1", t, out.opts.Scaling))
	}
	return out
}

func (d *imageData) clone() *imageData {
	snap := &Canvas{
		buffer: append([]Color(nil), d.src.buffer...),
		width:  d.src.width,
		height: d.src.height,
	}
	return &imageData{src: snap, opts: d.opts, markers: cloneCommands(d.markers)}
}

// render copies the source pixels into dst and moves the command's markers
// onto dst's queue. Transparent source pixels are skipped and everything
// outside dst is clipped.
func (d *imageData) render(dst *Canvas) {
	scale := d.opts.Scaling
	if scale.X < 1 || scale.Y < 1 {
		panic(fmt.Sprintf("raster: image scale %v must be at least 1", scale))
	}

	if len(d.markers) > 0 {
		Logger().Debug("raster: migrate markers", "count", len(d.markers))
		dst.markers = append(dst.markers, cloneCommands(d.markers)...)
	}

	src := d.src
	x0, y0 := d.opts.Destination.XY()
	Logger().Debug("raster: blit",
		"src_w", src.width, "src_h", src.height,
		"x", x0, "y", y0, "sx", scale.X, "sy", scale.Y)

	if scale.IsOne() {
		for j := 0; j < src.height; j++ {
			for i := 0; i < src.width; i++ {
				col, _ := src.Pixel(i, j)
				if col.IsTransparent() {
					continue
				}
				dst.SetPixel(x0+i, y0+j, col)
			}
		}
		return
	}

	for j := 0; j < src.height; j++ {
		for i := 0; i < src.width; i++ {
			col, _ := src.Pixel(i, j)
			if col.IsTransparent() {
				continue
			}
			bx := x0 + i*scale.X
			by := y0 + j*scale.Y
			top, bottom := max(by, 0), min(by+scale.Y, dst.height)
			for y := top; y < bottom; y++ {
				dst.FillSpan(bx, bx+scale.X, y, col)
			}
		}
	}
}
