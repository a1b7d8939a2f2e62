package gui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar provides demo switching and frame export controls.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnNext func()
	OnSave func()
	OnQuit func()

	demoLabel *widget.Label
}

// NewToolbar creates a new toolbar.
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.build()
	return t
}

func (t *Toolbar) build() {
	nextBtn := widget.NewButtonWithIcon("Next (N)", theme.NavigateNextIcon(), func() {
		if t.OnNext != nil {
			t.OnNext()
		}
	})

	saveBtn := widget.NewButtonWithIcon("Save (S)", theme.DocumentSaveIcon(), func() {
		if t.OnSave != nil {
			t.OnSave()
		}
	})

	quitBtn := widget.NewButtonWithIcon("Quit (Q)", theme.CancelIcon(), func() {
		if t.OnQuit != nil {
			t.OnQuit()
		}
	})

	t.demoLabel = widget.NewLabel("")

	t.container = container.NewHBox(
		t.demoLabel,
		widget.NewSeparator(),
		nextBtn,
		saveBtn,
		widget.NewSeparator(),
		quitBtn,
	)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// SetDemo shows the active demo name.
func (t *Toolbar) SetDemo(name string) {
	t.demoLabel.SetText("Demo: " + name)
}

// StatusBar shows the last status message and the measured frame rate.
type StatusBar struct {
	container *fyne.Container
	label     *widget.Label
	fpsLabel  *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:    widget.NewLabel("Ready"),
		fpsLabel: widget.NewLabel("0 fps"),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.fpsLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// SetFPS sets the frame rate display.
func (s *StatusBar) SetFPS(fps int) {
	s.fpsLabel.SetText(strconv.Itoa(fps) + " fps")
}
