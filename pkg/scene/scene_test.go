package scene

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frender/pkg/geom"
	"frender/pkg/raster"
)

const circleScene = `
width: 20
height: 20
ops:
  - op: background
    color: black
  - op: circle
    center: [10, 10]
    radius: 5
    stroke: red
    fill: white
`

func TestParseAndRender(t *testing.T) {
	s, err := Parse([]byte(circleScene))
	require.NoError(t, err)
	require.Len(t, s.Ops, 2)

	c, err := s.Render()
	require.NoError(t, err)

	for x := 6; x <= 14; x++ {
		p, _ := c.Pixel(x, 10)
		assert.Equal(t, raster.White, p, "x=%d", x)
	}
	p, _ := c.Pixel(5, 10)
	assert.Equal(t, raster.Red, p)
	p, _ = c.Pixel(0, 0)
	assert.Equal(t, raster.Black, p)
}

func TestParseAcceptsJSON(t *testing.T) {
	s, err := Parse([]byte(`{"width": 2, "height": 2, "ops": [{"op": "background", "color": "#00FF00"}]}`))
	require.NoError(t, err)

	c, err := s.Render()
	require.NoError(t, err)
	p, _ := c.Pixel(1, 1)
	assert.Equal(t, raster.Green, p)
}

func TestSchemaRejects(t *testing.T) {
	tests := map[string]string{
		"missing size":    `ops: []`,
		"unknown op":      "width: 1\nheight: 1\nops:\n  - op: spline\n",
		"line without to": "width: 1\nheight: 1\nops:\n  - op: line\n    from: [0, 0]\n",
		"bad point":       "width: 1\nheight: 1\nops:\n  - op: line\n    from: [0]\n    to: [1, 1]\n",
		"extra field":     "width: 1\nheight: 1\nops: []\ncolour: red\n",
		"not yaml":        "width: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidScene)
		})
	}
}

func TestSceneSizeBudget(t *testing.T) {
	tests := map[string]string{
		"scaled output": "width: 16384\nheight: 16384\nscale: 64\nops: []\n",
		"one side":      "width: 300\nheight: 10\nscale: 64\nops: []\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidScene)
		})
	}

	s, err := Parse([]byte("width: 256\nheight: 256\nscale: 64\nops: []\n"))
	require.NoError(t, err)
	w, h := s.OutputSize()
	assert.Equal(t, MaxSide, w)
	assert.Equal(t, MaxSide, h)

	built := &Scene{Width: 1, Height: 1, Layers: map[string]Layer{"big": {Width: MaxSide + 1, Height: 1}}}
	assert.ErrorIs(t, built.CheckSize(), ErrInvalidScene)
	_, err = built.Render()
	assert.ErrorIs(t, err, ErrInvalidScene)
}

func TestLayerIsRenderedOnce(t *testing.T) {
	s := NewBuilder(8, 2).
		Layer("dot", 1, 1, func(l *Builder) {
			l.Line(0, 0, 0, 0, raster.Red)
		}).
		Image("dot", 0, 0, 1).
		Image("dot", 7, 1, 1).
		Build()

	layerOps := 0
	in := NewInterpreter(s)
	in.OnOp = func(layer string, _ int, _ Op) {
		if layer == "dot" {
			layerOps++
		}
	}
	c, err := in.Render()
	require.NoError(t, err)
	assert.Equal(t, 1, layerOps)
	p, _ := c.Pixel(0, 0)
	assert.Equal(t, raster.Red, p)
	p, _ = c.Pixel(7, 1)
	assert.Equal(t, raster.Red, p)
}

func TestUnknownOpFromCode(t *testing.T) {
	s := &Scene{Width: 1, Height: 1, Ops: []Op{{Op: "spline"}}}
	_, err := s.Render()
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestBadColorIsAnError(t *testing.T) {
	s := &Scene{Width: 1, Height: 1, Ops: []Op{{Op: OpBackground, Color: "chartreuse-ish"}}}
	_, err := s.Render()
	assert.Error(t, err)
}

func TestRasterPanicsBecomeErrors(t *testing.T) {
	s := NewBuilder(10, 10).
		Transform(geom.Scale(-1, -1)).
		Circle(5, 5, 2, raster.Red, raster.Transparent).
		Build()

	_, err := s.Render()
	assert.ErrorContains(t, err, "negative")
}

func TestLayerMarkersMigrateIntoScaledOutput(t *testing.T) {
	s := NewBuilder(8, 8).
		Scaled(4, false).
		Layer("inner", 4, 4, func(lb *Builder) {
			lb.Line(0, 0, 3, 0, raster.Red).Marker()
		}).
		Image("inner", 2, 2, 1).
		Build()

	c, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, 32, c.Width())

	// The marker is mapped by the layer blit to (2,2)-(5,2), then by the
	// x4 output blit to (8,8)-(20,8).
	p, _ := c.Pixel(8, 8)
	assert.Equal(t, raster.Red, p)
	p, _ = c.Pixel(20, 8)
	assert.Equal(t, raster.Red, p)
	p, _ = c.Pixel(8, 9)
	assert.Equal(t, raster.Black, p)
	assert.Equal(t, 0, c.Markers())
}

func TestLayerCycle(t *testing.T) {
	s := NewBuilder(4, 4).
		Layer("a", 2, 2, func(lb *Builder) { lb.Image("a", 0, 0, 1) }).
		Image("a", 0, 0, 1).
		Build()

	_, err := s.Render()
	assert.ErrorContains(t, err, "includes itself")
}

func TestViewOps(t *testing.T) {
	s := NewBuilder(10, 10).
		Push().
		Transform(geom.Translate(2, 2)).
		Clip(0, 0, 5, 5).
		Line(0, 0, 0, 0, raster.Red).
		Pop().
		Line(0, 0, 0, 0, raster.Blue).
		Build()

	c, err := s.Render()
	require.NoError(t, err)
	p, _ := c.Pixel(2, 2)
	assert.Equal(t, raster.Red, p)
	p, _ = c.Pixel(0, 0)
	assert.Equal(t, raster.Blue, p)
	assert.Equal(t, c.Rect(), c.View().Clip())
}

func TestBuilderRoundTrip(t *testing.T) {
	s := NewBuilder(16, 9).
		Background(raster.Black).
		Line(1, 1, 14, 7, raster.White).
		Line(1, 1, 14, 7, raster.Red).Middle().Marker().
		Circle(5, 5, 3, raster.Red, raster.White).
		Rect(1, 1, 4, 4, raster.Green, raster.Transparent).
		Triangle(geom.V(0, 0), geom.V(5, 0), geom.V(0, 5), raster.Blue, raster.Blue).
		Build()

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.Ops, loaded.Ops)

	a, err := s.Render()
	require.NoError(t, err)
	b, err := loaded.Render()
	require.NoError(t, err)
	assert.Equal(t, a.Buffer(), b.Buffer())
}

func TestOnOpHook(t *testing.T) {
	s, err := Parse([]byte(circleScene))
	require.NoError(t, err)

	var seen []string
	in := NewInterpreter(s)
	in.OnOp = func(layer string, i int, op Op) { seen = append(seen, op.Op) }
	_, err = in.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{OpBackground, OpCircle}, seen)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("", raster.Blue)
	require.NoError(t, err)
	assert.Equal(t, raster.Blue, c)

	c, err = ParseColor(" Red ", raster.Blue)
	require.NoError(t, err)
	assert.Equal(t, raster.Red, c)

	c, err = ParseColor("#102030", raster.Blue)
	require.NoError(t, err)
	assert.Equal(t, raster.RGB(0x10, 0x20, 0x30), c)
}
