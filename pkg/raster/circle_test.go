package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frender/pkg/geom"
)

func TestCircleStrokeIsEightWaySymmetric(t *testing.T) {
	const size = 64
	cx, cy := size/2, size/2

	for r := 0; r <= 20; r++ {
		c := New(size, size)
		c.Circle(cx, cy, r, CircleStyle(Red))

		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				p, _ := c.Pixel(x, y)
				if p != Red {
					continue
				}
				dx, dy := x-cx, y-cy
				for _, m := range [][2]int{
					{dx, dy}, {-dx, dy}, {dx, -dy}, {-dx, -dy},
					{dy, dx}, {-dy, dx}, {dy, -dx}, {-dy, -dx},
				} {
					q, ok := c.Pixel(cx+m[0], cy+m[1])
					require.True(t, ok)
					require.Equal(t, Red, q, "r=%d (%d,%d) mirrored to (%d,%d)", r, dx, dy, m[0], m[1])
				}
			}
		}
	}
}

func TestCircleFillNeverCoversStroke(t *testing.T) {
	const size = 80
	for r := 0; r <= 35; r++ {
		stroke := New(size, size)
		stroke.Circle(40, 40, r, CircleStyle(Red))

		filled := New(size, size)
		filled.Circle(40, 40, r, CircleStyle(Red).WithFill(White))

		for i, p := range stroke.Buffer() {
			if p == Red {
				require.Equal(t, Red, filled.Buffer()[i], "r=%d pixel %d", r, i)
			}
		}
	}
}

func TestCircleFillDiameterRow(t *testing.T) {
	c := New(20, 20)
	c.Draw(CircleCommand(geom.C(10, 10, 5), CircleStyle(Red).WithFill(White)))

	for x := 6; x <= 14; x++ {
		p, _ := c.Pixel(x, 10)
		assert.Equal(t, White, p, "x=%d", x)
	}
	p, _ := c.Pixel(5, 10)
	assert.Equal(t, Red, p)
	p, _ = c.Pixel(15, 10)
	assert.Equal(t, Red, p)
}

func TestCircleWithoutFillLeavesInterior(t *testing.T) {
	c := New(20, 20)
	c.Circle(10, 10, 5, CircleStyle(Red))

	p, _ := c.Pixel(10, 10)
	assert.Equal(t, Transparent, p)
}

func TestCircleZeroRadiusIsOnePixel(t *testing.T) {
	c := New(5, 5)
	c.Circle(2, 2, 0, CircleStyle(Red).WithFill(White))

	assert.Equal(t, 1, countColor(c, Red))
	assert.Equal(t, 0, countColor(c, White))
}

func TestCircleNegativeRadiusPanics(t *testing.T) {
	c := New(5, 5)
	assert.Panics(t, func() {
		c.Circle(2, 2, -1, CircleStyle(Red))
	})

	c.SetTransform(geom.Scale(-1, -1))
	assert.Panics(t, func() {
		c.Circle(2, 2, 3, CircleStyle(Red))
	})
}
