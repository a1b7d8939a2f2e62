package geom

import "fmt"

// Transform2D is an axis-aligned transform made of a per-axis scale
// followed by a translation:
//
//	v' = v*Scaling + Translation
//
// The order is fixed. Scaling always happens before translating, which is
// what lets transforms be chained across nested canvases.
type Transform2D struct {
	Translation Vec2
	Scaling     Vec2
}

// Transformer is implemented by anything that can apply a Transform2D to
// itself in place.
type Transformer interface {
	Transform(t Transform2D)
}

// Identity returns the identity transform.
func Identity() Transform2D {
	return Transform2D{Translation: Zero(), Scaling: One()}
}

// NewTransform returns a transform with the given translation and scaling.
func NewTransform(translation, scaling Vec2) Transform2D {
	return Transform2D{Translation: translation, Scaling: scaling}
}

// Translate returns a translation-only transform.
func Translate(dx, dy int) Transform2D {
	return Transform2D{Translation: V(dx, dy), Scaling: One()}
}

// Scale returns a scaling-only transform.
func Scale(sx, sy int) Transform2D {
	return Transform2D{Translation: Zero(), Scaling: V(sx, sy)}
}

// Apply transforms a vector.
func (t Transform2D) Apply(v Vec2) Vec2 {
	return v.Mul(t.Scaling).Add(t.Translation)
}

// ScalingPart returns t with the translation removed. Size-like values
// (radii, rect sizes, blit scale factors) are transformed by it.
func (t Transform2D) ScalingPart() Transform2D {
	return Transform2D{Translation: Zero(), Scaling: t.Scaling}
}

// TranslationPart returns t with the scaling reset to one.
func (t Transform2D) TranslationPart() Transform2D {
	return Transform2D{Translation: t.Translation, Scaling: One()}
}

// Then returns the transform equivalent to applying t and then next:
//
//	next.Apply(t.Apply(v)) == t.Then(next).Apply(v)
func (t Transform2D) Then(next Transform2D) Transform2D {
	return Transform2D{
		Translation: t.Translation.Mul(next.Scaling).Add(next.Translation),
		Scaling:     t.Scaling.Mul(next.Scaling),
	}
}

// Compose is Then written as a function: Compose(a, b) applies a first.
func Compose(a, b Transform2D) Transform2D {
	return a.Then(b)
}

// IsIdentity reports whether t leaves every vector unchanged.
func (t Transform2D) IsIdentity() bool {
	return t.Translation.IsZero() && t.Scaling.IsOne()
}

// IsUniform reports whether both axes scale by the same factor.
func (t Transform2D) IsUniform() bool {
	return t.Scaling.X == t.Scaling.Y
}

func (t Transform2D) String() string {
	return fmt.Sprintf("scale%v+%v", t.Scaling, t.Translation)
}
