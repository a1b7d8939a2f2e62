package raster

import (
	"image"

	"golang.org/x/image/vector"

	"frender/pkg/geom"
)

// fillBackground fills exactly the clip rectangle of dst.
func fillBackground(dst *Canvas, col Color) {
	clip := dst.view.clip
	for y := clip.Y1(); y < clip.Y2(); y++ {
		dst.FillSpan(clip.X1(), clip.X2(), y, col)
	}
}

// drawRect strokes the border pixels of r and fills the pixels inside
// them.
func drawRect(dst *Canvas, r geom.Rect, o RectOptions) {
	if r.Empty() {
		return
	}
	x1, y1, x2, y2 := r.X1(), r.Y1(), r.X2()-1, r.Y2()-1

	if !o.Fill.IsTransparent() {
		for y := y1 + 1; y < y2; y++ {
			dst.FillSpan(x1+1, x2, y, o.Fill)
		}
	}
	if o.Stroke.IsTransparent() {
		return
	}
	dst.FillSpan(x1, x2+1, y1, o.Stroke)
	dst.FillSpan(x1, x2+1, y2, o.Stroke)
	for y := y1 + 1; y < y2; y++ {
		dst.SetPixel(x1, y, o.Stroke)
		dst.SetPixel(x2, y, o.Stroke)
	}
}

// coverageThreshold is the minimum coverage, out of 0xFF, for a pixel to
// count as inside a filled triangle. Fills are not anti-aliased.
const coverageThreshold = 0x80

// drawTriangle fills the triangle interior and strokes its edges. The fill
// is computed as a coverage mask over the part of the bounding box that is
// on the canvas, then thresholded to whole pixels.
func drawTriangle(dst *Canvas, t geom.Triangle, o TriangleOptions) {
	if !o.Fill.IsTransparent() {
		fillTriangle(dst, t, o.Fill)
	}
	if o.Stroke.IsTransparent() {
		return
	}
	for _, e := range t.Edges() {
		drawLine(dst, e, LineStyle(o.Stroke))
	}
}

func fillTriangle(dst *Canvas, t geom.Triangle, col Color) {
	box := t.Bounds().Intersect(dst.Rect())
	if box.Empty() {
		return
	}
	w, h := box.Size.XY()

	// Pixel (x, y) is the unit square [x, x+1) x [y, y+1), so corners sit
	// on pixel centers.
	poly := make([]point32, 0, 3)
	for _, v := range [3]geom.Vec2{t.A, t.B, t.C} {
		poly = append(poly, point32{float32(v.X-box.X1()) + 0.5, float32(v.Y-box.Y1()) + 0.5})
	}
	poly = clipPolygon(poly, float32(w), float32(h))
	if len(poly) < 3 {
		return
	}

	r := vector.NewRasterizer(w, h)
	r.MoveTo(poly[0].x, poly[0].y)
	for _, p := range poly[1:] {
		r.LineTo(p.x, p.y)
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.Pix[y*mask.Stride+x] >= coverageThreshold {
				dst.SetPixel(box.X1()+x, box.Y1()+y, col)
			}
		}
	}
}

type point32 struct{ x, y float32 }

// clipPolygon clips poly to the rectangle [0, w] x [0, h] one edge at a
// time (Sutherland-Hodgman), so the rasterizer never sees points outside
// its area.
func clipPolygon(poly []point32, w, h float32) []point32 {
	edges := []struct {
		inside func(p point32) bool
		cross  func(a, b point32) point32
	}{
		{func(p point32) bool { return p.x >= 0 }, func(a, b point32) point32 { return lerpX(a, b, 0) }},
		{func(p point32) bool { return p.x <= w }, func(a, b point32) point32 { return lerpX(a, b, w) }},
		{func(p point32) bool { return p.y >= 0 }, func(a, b point32) point32 { return lerpY(a, b, 0) }},
		{func(p point32) bool { return p.y <= h }, func(a, b point32) point32 { return lerpY(a, b, h) }},
	}
	for _, e := range edges {
		if len(poly) == 0 {
			return nil
		}
		in := poly
		poly = make([]point32, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				poly = append(poly, cur)
			case e.inside(cur):
				poly = append(poly, e.cross(prev, cur), cur)
			case e.inside(prev):
				poly = append(poly, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return poly
}

func lerpX(a, b point32, x float32) point32 {
	t := (x - a.x) / (b.x - a.x)
	return point32{x, a.y + t*(b.y-a.y)}
}

func lerpY(a, b point32, y float32) point32 {
	t := (y - a.y) / (b.y - a.y)
	return point32{a.x + t*(b.x-a.x), y}
}
