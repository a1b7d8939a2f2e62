package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"frender/pkg/geom"
)

func TestFitUsesWholeMagnification(t *testing.T) {
	zoom, origin := fit(fyne.NewSize(250, 100), 40, 30)
	assert.Equal(t, float32(3), zoom)
	assert.Equal(t, fyne.NewPos(65, 5), origin)
}

func TestFitShrinksLargeFrames(t *testing.T) {
	zoom, _ := fit(fyne.NewSize(100, 100), 200, 400)
	assert.Equal(t, float32(0.25), zoom)
}

func TestToPixel(t *testing.T) {
	size := fyne.NewSize(250, 100)
	assert.Equal(t, geom.V(0, 0), toPixel(fyne.NewPos(65, 5), size, 40, 30))
	assert.Equal(t, geom.V(1, 2), toPixel(fyne.NewPos(68.5, 11), size, 40, 30))
	assert.Equal(t, geom.V(-1, -1), toPixel(fyne.NewPos(64, 4), size, 40, 30))
}
