package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frender/pkg/geom"
)

func TestCommandKinds(t *testing.T) {
	src := New(1, 1)
	cmds := map[Kind]Command{
		KindBackground: BackgroundCommand(Red),
		KindLine:       LineCommand(geom.L(0, 0, 1, 1), LineStyle(Red)),
		KindRect:       RectCommand(geom.R(0, 0, 2, 2), RectStyle(Red)),
		KindCircle:     CircleCommand(geom.C(0, 0, 1), CircleStyle(Red)),
		KindTriangle:   TriangleCommand(geom.T(geom.V(0, 0), geom.V(1, 0), geom.V(0, 1)), TriangleStyle(Red)),
		KindImage:      ImageCommand(src, At(0, 0)),
	}
	for k, cmd := range cmds {
		assert.Equal(t, k, cmd.Kind())
		assert.NotEmpty(t, cmd.String())
		assert.Equal(t, k, cmd.Clone().Kind())
	}
	assert.Equal(t, "circle", KindCircle.String())
}

func TestCommandTransform(t *testing.T) {
	tr := geom.NewTransform(geom.V(1, 2), geom.V(3, 3))

	line := LineCommand(geom.L(1, 1, 2, 2), LineStyle(Red))
	line.Transform(tr)
	l, _ := line.Line()
	assert.Equal(t, geom.L(4, 5, 7, 8), l)

	rect := RectCommand(geom.R(1, 1, 2, 2), RectStyle(Red))
	rect.Transform(tr)
	r, _ := rect.Rect()
	assert.Equal(t, geom.R(4, 5, 6, 6), r)

	circle := CircleCommand(geom.C(1, 1, 2), CircleStyle(Red))
	circle.Transform(tr)
	c, _ := circle.Circle()
	assert.Equal(t, geom.C(4, 5, 6), c)

	bg := BackgroundCommand(Red)
	bg.Transform(tr)
	assert.Equal(t, BackgroundCommand(Red), bg)
}

func TestCloneIsDetached(t *testing.T) {
	cmd := LineCommand(geom.L(0, 0, 1, 1), LineStyle(Red))
	clone := cmd.Clone()
	clone.Transform(geom.Translate(5, 5))

	l, _ := cmd.Line()
	assert.Equal(t, geom.L(0, 0, 1, 1), l)
}
