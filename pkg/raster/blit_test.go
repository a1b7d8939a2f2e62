package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frender/pkg/geom"
)

func patterned(w, h int) *Canvas {
	c := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetPixel(x, y, RGB(uint8(x*40), uint8(y*40), 0x7F))
		}
	}
	return c
}

func TestBlitUnscaledRoundTrip(t *testing.T) {
	src := patterned(6, 5)
	dst := New(6, 5)
	dst.Image(src, 0, 0, 1)

	assert.Equal(t, src.Buffer(), dst.Buffer())
}

func TestBlitScaledBlocks(t *testing.T) {
	for _, k := range []int{2, 3, 5} {
		src := patterned(4, 3)
		dst := New(4*k+3, 3*k+2)
		dst.Image(src, 1, 2, k)

		for j := 0; j < 3; j++ {
			for i := 0; i < 4; i++ {
				want, _ := src.Pixel(i, j)
				for dy := 0; dy < k; dy++ {
					for dx := 0; dx < k; dx++ {
						got, ok := dst.Pixel(1+i*k+dx, 2+j*k+dy)
						require.True(t, ok)
						require.Equal(t, want, got, "k=%d src(%d,%d)", k, i, j)
					}
				}
			}
		}
		p, _ := dst.Pixel(0, 0)
		assert.Equal(t, Transparent, p)
	}
}

func TestBlitSkipsTransparentAndClips(t *testing.T) {
	src := New(3, 3)
	src.SetPixel(1, 1, Red)
	src.SetPixel(2, 2, Blue)

	dst := New(4, 4)
	dst.Background(Green)
	assert.NotPanics(t, func() {
		dst.Image(src, 2, 2, 1)
		dst.Image(src, -2, -2, 3)
	})

	p, _ := dst.Pixel(3, 3)
	assert.Equal(t, Red, p)
	p, _ = dst.Pixel(0, 0)
	assert.Equal(t, Green, p, "transparent source pixels are skipped")
	p, _ = dst.Pixel(1, 1)
	assert.Equal(t, Red, p)
}

func TestBlitInvalidScalePanics(t *testing.T) {
	src := New(2, 2)
	dst := New(4, 4)

	assert.Panics(t, func() { dst.Image(src, 0, 0, 0) })
	assert.Panics(t, func() { At(0, 0).ScaleBy(1.5) })
	assert.Panics(t, func() { At(0, 0).ScaleBy(0.5) })
	assert.Equal(t, geom.Splat(3), At(0, 0).ScaleBy(3).Scaling)

	cmd := ImageCommand(src, At(0, 0))
	assert.Panics(t, func() { cmd.Transform(geom.Scale(0, 0)) })
}

func TestBlitHugeScaleIsClipped(t *testing.T) {
	src := New(2, 2)
	src.SetPixel(0, 0, Blue)
	src.SetPixel(1, 1, Red)

	dst := New(4, 4)
	dst.Image(src, 0, 0, 1<<30)
	assert.Equal(t, 16, countColor(dst, Blue))
	assert.Equal(t, 0, countColor(dst, Red))
}

func TestBlitMigratesMarkers(t *testing.T) {
	src := New(4, 4)
	src.Marker(LineCommand(geom.L(0, 0, 1, 0), LineStyle(Red)))

	dst := New(20, 20)
	dst.Image(src, 2, 3, 5)

	assert.Equal(t, 1, src.Markers(), "source keeps its queue")
	require.Equal(t, 1, dst.Markers())
	assert.Equal(t, 0, countColor(dst, Red))

	dst.RenderMarkers()
	p, _ := dst.Pixel(2, 3)
	assert.Equal(t, Red, p)
	p, _ = dst.Pixel(7, 3)
	assert.Equal(t, Red, p)
	assert.Equal(t, 6, countColor(dst, Red))
}

func TestBlitMarkersFollowViewTransform(t *testing.T) {
	src := New(4, 4)
	src.Marker(LineCommand(geom.L(1, 1, 1, 1), LineStyle(Red)))

	dst := New(40, 40)
	dst.SetTransform(geom.NewTransform(geom.V(-4, -4), geom.V(5, 5)))
	dst.Image(src, 1, 1, 1)
	dst.ClearTransform()
	dst.RenderMarkers()

	// blit puts the marker at (2,2), the view maps that to (6,6).
	p, _ := dst.Pixel(6, 6)
	assert.Equal(t, Red, p)
	assert.Equal(t, 1, countColor(dst, Red))
}

func TestImageMarkerIsSnapshot(t *testing.T) {
	src := New(2, 2)
	src.Background(Red)

	dst := New(2, 2)
	dst.Marker(ImageCommand(src, At(0, 0)))
	src.Background(Blue)
	dst.RenderMarkers()

	assert.Equal(t, 4, countColor(dst, Red))
}

func TestImageCommandTransformDoesNotLeak(t *testing.T) {
	src := New(1, 1)
	src.Background(Red)
	cmd := ImageCommand(src, At(0, 0))

	moved := cmd
	moved.Transform(geom.Translate(2, 2))

	dst := New(4, 4)
	dst.Draw(cmd)
	p, _ := dst.Pixel(0, 0)
	assert.Equal(t, Red, p)
	p, _ = dst.Pixel(2, 2)
	assert.Equal(t, Transparent, p)
}
