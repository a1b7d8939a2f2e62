package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frender/pkg/geom"
)

type pixel struct{ x, y int }

func linePixels(l geom.Line) map[pixel]int {
	out := map[pixel]int{}
	if l.End.Less(l.Start) {
		l = l.Reversed()
	}
	bresenham(l, func(x, y int) { out[pixel{x, y}]++ })
	return out
}

func TestBresenhamProperties(t *testing.T) {
	for x1 := -4; x1 <= 4; x1++ {
		for y1 := -4; y1 <= 4; y1++ {
			for x2 := -4; x2 <= 4; x2++ {
				for y2 := -4; y2 <= 4; y2++ {
					l := geom.L(x1, y1, x2, y2)
					fwd := linePixels(l)
					rev := linePixels(l.Reversed())

					want := max(abs(x2-x1), abs(y2-y1)) + 1
					require.Len(t, fwd, want, "line %v", l)
					require.Equal(t, fwd, rev, "line %v", l)
					require.Contains(t, fwd, pixel{x1, y1})
					require.Contains(t, fwd, pixel{x2, y2})
					for p, n := range fwd {
						require.Equal(t, 1, n, "pixel %v visited twice", p)
					}
				}
			}
		}
	}
}

func countColor(c *Canvas, col Color) int {
	n := 0
	for _, p := range c.Buffer() {
		if p == col {
			n++
		}
	}
	return n
}

func TestCanvasLineDiagonal(t *testing.T) {
	c := New(10, 10)
	c.Draw(LineCommand(geom.L(1, 1, 8, 8), LineStyle(White)))

	p, ok := c.Pixel(1, 1)
	require.True(t, ok)
	assert.Equal(t, White, p)
	p, _ = c.Pixel(8, 8)
	assert.Equal(t, White, p)
	assert.Equal(t, 8, countColor(c, White))
}

func TestLineOffCanvasIsClipped(t *testing.T) {
	c := New(5, 5)
	assert.NotPanics(t, func() {
		c.Line(-10, 2, 20, 2, LineStyle(Red))
		c.Line(-3, -3, -1, -9, LineStyle(Red))
	})
	assert.Equal(t, 5, countColor(c, Red))
}

func TestLineWidth(t *testing.T) {
	c := New(10, 10)
	c.Line(0, 5, 9, 5, LineStyle(Red).WithWidth(3))

	assert.Equal(t, 30, countColor(c, Red))
	for _, y := range []int{4, 5, 6} {
		p, _ := c.Pixel(3, y)
		assert.Equal(t, Red, p, "row %d", y)
	}
}

func TestMiddleOffsetScalesWithTransform(t *testing.T) {
	cmd := LineCommand(geom.L(0, 0, 2, 0), LineStyle(Red).Middle())

	c := New(50, 50)
	c.Draw(cmd)
	p, _ := c.Pixel(0, 0)
	assert.Equal(t, Red, p, "half a pixel floors to zero")

	c = New(50, 50)
	cmd.Transform(geom.Scale(10, 10))
	c.Draw(cmd)
	p, _ = c.Pixel(5, 5)
	assert.Equal(t, Red, p)
	p, _ = c.Pixel(25, 5)
	assert.Equal(t, Red, p)
	assert.Equal(t, 21, countColor(c, Red))

	l, o := cmd.Line()
	assert.Equal(t, geom.L(0, 0, 20, 0), l)
	assert.True(t, o.Centered())
}
