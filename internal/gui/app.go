// Package gui provides the desktop window that runs the frender demos
// using Fyne.
package gui

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"frender/internal/config"
	"frender/internal/demo"
	"frender/internal/input"
	"frender/pkg/raster"
)

// App is the demo window. A frame pump renders the active demo at the
// configured rate, replays its markers and presents the result.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        config.AppConfig
	log        *slog.Logger

	demos   *demo.Switcher
	tracker *input.Tracker
	frame   *raster.Canvas
	images  [2]*image.NRGBA
	next    int

	// UI components
	view    *FrameView
	toolbar *Toolbar
	status  *StatusBar
}

// NewApp creates the window for demos.
func NewApp(cfg config.AppConfig, demos *demo.Switcher, log *slog.Logger) *App {
	w, h := cfg.Window.Width, cfg.Window.Height
	a := &App{
		fyneApp: app.New(),
		cfg:     cfg,
		log:     log,
		demos:   demos,
		tracker: input.NewTracker(),
		frame:   raster.New(w, h),
		images: [2]*image.NRGBA{
			image.NewNRGBA(image.Rect(0, 0, w, h)),
			image.NewNRGBA(image.Rect(0, 0, w, h)),
		},
	}
	demos.Log = log

	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.mainWindow = a.fyneApp.NewWindow(cfg.Window.Title)
	a.mainWindow.Resize(fyne.NewSize(float32(w), float32(h)+80))

	return a
}

// Run starts the frame pump and blocks until the window closes.
func (a *App) Run() {
	a.buildUI()

	ctx, cancel := context.WithCancel(context.Background())
	a.mainWindow.SetOnClosed(cancel)
	go a.pump(ctx)

	a.mainWindow.ShowAndRun()
	cancel()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.view = NewFrameView(a.frame.Width(), a.frame.Height(), a.tracker)

	a.toolbar = NewToolbar()
	a.toolbar.OnNext = func() { a.tap("N") }
	a.toolbar.OnSave = func() { a.tap("S") }
	a.toolbar.OnQuit = func() { a.tap("Q") }
	a.toolbar.SetDemo(a.demos.Name())

	a.status = NewStatusBar()

	save := a.demos.Save
	a.demos.Save = func(name string, c *raster.Canvas) error {
		if save == nil {
			return nil
		}
		err := save(name, c)
		if err != nil {
			a.status.SetStatus(fmt.Sprintf("Save failed: %v", err))
		} else {
			a.status.SetStatus("Saved " + name)
		}
		return err
	}

	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()), // Top
		a.status.Container(),                       // Bottom
		nil,                                        // Left
		nil,                                        // Right
		a.view,                                     // Center
	)
	a.mainWindow.SetContent(content)

	if dc, ok := a.mainWindow.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) { a.tracker.KeyDown(input.Key(ev.Name)) })
		dc.SetOnKeyUp(func(ev *fyne.KeyEvent) { a.tracker.KeyUp(input.Key(ev.Name)) })
	} else {
		a.mainWindow.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) { a.tap(input.Key(ev.Name)) })
	}
}

// tap presses and releases k within one frame.
func (a *App) tap(k input.Key) {
	a.tracker.KeyDown(k)
	a.tracker.KeyUp(k)
}

// pump renders frames until ctx is done.
func (a *App) pump(ctx context.Context) {
	fps := a.cfg.Window.FPS
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	frames := 0
	window := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !a.step() {
			a.fyneApp.Quit()
			return
		}

		frames++
		if since := time.Since(window); since >= time.Second {
			a.status.SetFPS(int(float64(frames) / since.Seconds()))
			frames = 0
			window = time.Now()
		}
	}
}

// step renders and presents one frame. It reports false once the demo
// asked to quit.
func (a *App) step() bool {
	name := a.demos.Name()
	demo.Step(a.demos, a.frame, a.tracker.Frame())

	img := a.images[a.next]
	a.next ^= 1
	a.frame.CopyTo(img)
	a.view.SetImage(img)

	if n := a.demos.Name(); n != name {
		a.toolbar.SetDemo(n)
		a.log.Debug("demo shown", "demo", n)
	}
	return !a.demos.Quit()
}
