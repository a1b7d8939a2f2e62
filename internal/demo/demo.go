// Package demo contains the interactive example programs shown by the
// frender window and rendered headless by the CLI.
package demo

import (
	"fmt"
	"sort"
	"strings"

	"frender/internal/input"
	"frender/pkg/raster"
)

// App is one demo program. Update runs once per frame with that frame's
// input, then Render draws into the frame canvas.
type App interface {
	Name() string
	Update(in input.Snapshot)
	Render(c *raster.Canvas)
}

// AfterFramer is implemented by apps that need the finished frame, after
// markers have been replayed.
type AfterFramer interface {
	AfterFrame(c *raster.Canvas)
}

// Quitter is implemented by apps that can ask the window to close.
type Quitter interface {
	Quit() bool
}

// DefaultScale is the magnification of the scaled previews.
const DefaultScale = 20

var factories = map[string]func(scale int) App{
	"lines":   func(int) App { return NewLines() },
	"fill":    func(scale int) App { return NewScaled(NewFill(), scale) },
	"builder": func(scale int) App { return NewScaled(NewBuilder(), scale) },
}

// Names lists the available demos in switching order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New creates the named demo. scale is the preview magnification for the
// demos drawn at pixel scale; values below one select DefaultScale.
func New(name string, scale int) (App, error) {
	f, ok := factories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	if scale < 1 {
		scale = DefaultScale
	}
	return f(scale), nil
}

// Step runs one frame: update, render, marker replay and the post-frame
// hook. The canvas view is reset first so a demo never inherits the
// previous frame's transform or clip.
func Step(app App, c *raster.Canvas, in input.Snapshot) {
	c.ClearTransform()
	c.ResetClip()
	app.Update(in)
	app.Render(c)
	c.RenderMarkers()
	if af, ok := app.(AfterFramer); ok {
		af.AfterFrame(c)
	}
}

// RenderFrame renders a single frame of app into a new w x h canvas.
func RenderFrame(app App, w, h int, in input.Snapshot) *raster.Canvas {
	c := raster.New(w, h)
	Step(app, c, in)
	return c
}
