// Package geom provides the integer geometry used by the rasterizer:
// vectors, translate+scale transforms and the drawable shape primitives.
package geom

import "fmt"

// Vec2 is a 2D integer vector. Pixel coordinates, sizes and scale factors
// are all expressed with it.
type Vec2 struct {
	X, Y int
}

// V is shorthand for Vec2{x, y}.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with both components set to n.
func Splat(n int) Vec2 {
	return Vec2{n, n}
}

// Zero returns the additive identity.
func Zero() Vec2 {
	return Vec2{}
}

// One returns the multiplicative identity.
func One() Vec2 {
	return Vec2{1, 1}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsOne reports whether both components are one.
func (v Vec2) IsOne() bool {
	return v.X == 1 && v.Y == 1
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k int) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// XY returns the components as a pair.
func (v Vec2) XY() (int, int) {
	return v.X, v.Y
}

// Less orders vectors by X, then Y.
func (v Vec2) Less(o Vec2) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	return v.Y < o.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Transform applies t to v in place.
func (v *Vec2) Transform(t Transform2D) {
	*v = t.Apply(*v)
}
