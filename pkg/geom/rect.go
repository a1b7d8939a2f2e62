package geom

// Rect is an axis-aligned rectangle covering the half-open pixel range
// [X1, X2) x [Y1, Y2).
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// R returns the rectangle at (x, y) with the given width and height.
func R(x, y, w, h int) Rect {
	return Rect{Pos: V(x, y), Size: V(w, h)}
}

// NewRect creates a rectangle from two corner points.
func NewRect(x1, y1, x2, y2 int) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{Pos: V(x1, y1), Size: V(x2-x1, y2-y1)}
}

func (r Rect) X1() int { return r.Pos.X }
func (r Rect) Y1() int { return r.Pos.Y }
func (r Rect) X2() int { return r.Pos.X + r.Size.X }
func (r Rect) Y2() int { return r.Pos.Y + r.Size.Y }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1() && x < r.X2() && y >= r.Y1() && y < r.Y2()
}

// Intersect returns the overlap of two rectangles. The result is empty
// (zero size) when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X1(), o.X1())
	y1 := max(r.Y1(), o.Y1())
	x2 := min(r.X2(), o.X2())
	y2 := min(r.Y2(), o.Y2())
	if x2 <= x1 || y2 <= y1 {
		return Rect{Pos: V(x1, y1)}
	}
	return NewRect(x1, y1, x2, y2)
}

// Transform moves the position by the full transform and the size by the
// scaling part only.
func (r *Rect) Transform(t Transform2D) {
	r.Pos = t.Apply(r.Pos)
	r.Size = t.ScalingPart().Apply(r.Size)
	// A negative scale flips the rectangle; keep Size positive.
	if r.Size.X < 0 {
		r.Pos.X += r.Size.X
		r.Size.X = -r.Size.X
	}
	if r.Size.Y < 0 {
		r.Pos.Y += r.Size.Y
		r.Size.Y = -r.Size.Y
	}
}
