package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frender/pkg/codec"
	"frender/pkg/raster"
	"frender/pkg/scene"
)

func lineScene() *scene.Scene {
	return scene.NewBuilder(10, 10).
		Background(raster.Blue).
		Line(1, 1, 8, 8, raster.White).
		Line(0, 9, 9, 9, raster.Red).Marker().
		Build()
}

func TestRenderOptions(t *testing.T) {
	o := NewRenderOptions(Scale(3), Background(raster.White), Grid(raster.Red), NoMarkers())
	assert.Equal(t, 3, o.Scale)
	assert.Equal(t, raster.White, o.Background)
	assert.True(t, o.Grid)
	assert.Equal(t, raster.Red, o.GridColor)
	assert.False(t, o.Markers)

	o.Apply(Scale(0))
	assert.Equal(t, 3, o.Scale, "invalid scale is ignored")
	assert.Equal(t, 1, DefaultRenderOptions().Scale)
}

func TestExportOptions(t *testing.T) {
	assert.Equal(t, 100, JPEG(500).Quality)
	assert.Equal(t, 1, JPEG(-2).Quality)
	assert.Equal(t, codec.PNG, PNG().Format)
	assert.Equal(t, "t", PDF("t").Title)
}

func TestRenderScene(t *testing.T) {
	doc := FromScene(lineScene())
	frame, err := doc.Render()
	require.NoError(t, err)

	p, _ := frame.Pixel(1, 1)
	assert.Equal(t, raster.White, p)
	p, _ = frame.Pixel(5, 9)
	assert.Equal(t, raster.Red, p)
	assert.Equal(t, 0, frame.Markers())
}

func TestRenderSceneScaledKeepsMarkersThin(t *testing.T) {
	doc := FromScene(lineScene())
	frame, err := doc.Render(Scale(4))
	require.NoError(t, err)
	assert.Equal(t, 40, frame.Width())

	// The white line is part of the frame and scales to blocks, the red
	// marker is replayed after scaling and stays one pixel tall.
	p, _ := frame.Pixel(7, 7)
	assert.Equal(t, raster.White, p)
	p, _ = frame.Pixel(20, 36)
	assert.Equal(t, raster.Red, p)
	p, _ = frame.Pixel(20, 37)
	assert.Equal(t, raster.Blue, p)
}

func TestRenderNoMarkers(t *testing.T) {
	frame, err := FromScene(lineScene()).Render(NoMarkers())
	require.NoError(t, err)
	assert.Equal(t, 1, frame.Markers())
}

func TestOpenSceneAndImage(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "s.yaml")
	require.NoError(t, lineScene().Save(scenePath))

	doc, err := Open(scenePath)
	require.NoError(t, err)
	defer doc.Close()
	assert.Equal(t, KindScene, doc.Kind())
	info := doc.Info()
	assert.Equal(t, 10, info.Width)
	assert.Equal(t, 3, info.Ops)
	assert.Positive(t, info.FileSize)

	pngPath := filepath.Join(dir, "out", "frame.png")
	frame, err := doc.RenderToFile(pngPath, DefaultExportOptions())
	require.NoError(t, err)

	img, err := Open(pngPath)
	require.NoError(t, err)
	assert.Equal(t, KindImage, img.Kind())
	assert.Equal(t, "png", img.Info().Format)

	again, err := img.Render()
	require.NoError(t, err)
	assert.Equal(t, frame.Buffer(), again.Buffer())
}

func TestExportExplicitFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bin")
	require.NoError(t, Export(path, raster.New(3, 3), PDF("x")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestRenderRejectsOversizedScale(t *testing.T) {
	doc := FromCanvas(raster.New(1024, 16))
	_, err := doc.Render(Scale(17))
	assert.ErrorIs(t, err, ErrFrameTooLarge)

	frame, err := doc.Render(Scale(16))
	require.NoError(t, err)
	w, h := frame.Size()
	assert.Equal(t, scene.MaxSide, w)
	assert.Equal(t, 256, h)
}

func TestRenderRejectsOversizedScene(t *testing.T) {
	s := &scene.Scene{Width: 20000, Height: 1, Ops: []scene.Op{}}
	_, err := FromScene(s).Render()
	assert.ErrorIs(t, err, scene.ErrInvalidScene)
}
