package geom

// Line is a segment between two pixel coordinates. Both endpoints are
// part of the rasterized line.
type Line struct {
	Start, End Vec2
}

// L returns the line from (x1, y1) to (x2, y2).
func L(x1, y1, x2, y2 int) Line {
	return Line{Start: V(x1, y1), End: V(x2, y2)}
}

// Transform applies t to both endpoints.
func (l *Line) Transform(t Transform2D) {
	l.Start.Transform(t)
	l.End.Transform(t)
}

// Reversed returns the line with its endpoints swapped.
func (l Line) Reversed() Line {
	return Line{Start: l.End, End: l.Start}
}

// Circle is given by its center and radius in pixels.
type Circle struct {
	Center Vec2
	Radius int
}

// C returns the circle at (x, y) with radius r.
func C(x, y, r int) Circle {
	return Circle{Center: V(x, y), Radius: r}
}

// Transform moves the center by the full transform and scales the radius by
// the x component of the scaling. Circles assume uniform scaling.
func (c *Circle) Transform(t Transform2D) {
	c.Center.Transform(t)
	c.Radius *= t.Scaling.X
}

// Triangle holds three corners.
type Triangle struct {
	A, B, C Vec2
}

// T returns the triangle with the given corners.
func T(a, b, c Vec2) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Transform applies t to every corner.
func (tr *Triangle) Transform(t Transform2D) {
	tr.A.Transform(t)
	tr.B.Transform(t)
	tr.C.Transform(t)
}

// Edges returns the three sides in A-B, B-C, C-A order.
func (tr Triangle) Edges() [3]Line {
	return [3]Line{
		{tr.A, tr.B},
		{tr.B, tr.C},
		{tr.C, tr.A},
	}
}

// Bounds returns the smallest rectangle containing the corners, inclusive
// of the right and bottom-most pixels.
func (tr Triangle) Bounds() Rect {
	x1 := min(tr.A.X, tr.B.X, tr.C.X)
	y1 := min(tr.A.Y, tr.B.Y, tr.C.Y)
	x2 := max(tr.A.X, tr.B.X, tr.C.X)
	y2 := max(tr.A.Y, tr.B.Y, tr.C.Y)
	return NewRect(x1, y1, x2+1, y2+1)
}
