package demo

import (
	"log/slog"

	"frender/internal/input"
	"frender/pkg/raster"
)

// Switcher cycles through several demos: N shows the next one, S saves the
// finished frame through Save and Q asks the window to close.
type Switcher struct {
	Demos []App
	Save  func(name string, c *raster.Canvas) error
	Log   *slog.Logger

	current  int
	saveNext bool
	advance  bool
	quit     bool
}

// NewSwitcher starts on the demo named start, or the first one when start
// is not among demos.
func NewSwitcher(demos []App, start string) *Switcher {
	s := &Switcher{Demos: demos, Log: slog.Default()}
	for i, d := range demos {
		if d.Name() == start {
			s.current = i
		}
	}
	return s
}

// All builds a switcher over every registered demo.
func All(scale int, start string) *Switcher {
	var demos []App
	for _, n := range Names() {
		d, _ := New(n, scale)
		demos = append(demos, d)
	}
	return NewSwitcher(demos, start)
}

// Current returns the active demo.
func (s *Switcher) Current() App { return s.Demos[s.current] }

func (s *Switcher) Name() string { return s.Current().Name() }

func (s *Switcher) Update(in input.Snapshot) {
	if in.JustPressed("Q") || in.JustPressed("Escape") {
		s.quit = true
	}
	if in.JustPressed("S") {
		s.saveNext = true
	}
	if in.JustPressed("N") {
		s.advance = true
	}
	s.Current().Update(in)
}

func (s *Switcher) Render(c *raster.Canvas) {
	s.Current().Render(c)
}

// AfterFrame saves the frame when requested, then advances to the next
// demo if N was pressed this frame.
func (s *Switcher) AfterFrame(c *raster.Canvas) {
	if af, ok := s.Current().(AfterFramer); ok {
		af.AfterFrame(c)
	}
	if s.saveNext {
		s.saveNext = false
		if s.Save != nil {
			if err := s.Save(s.Name(), c); err != nil {
				s.Log.Error("save frame", "demo", s.Name(), "error", err)
			} else {
				s.Log.Info("frame saved", "demo", s.Name())
			}
		}
	}
	if s.advance {
		s.advance = false
		s.Next()
	}
}

// Next switches to the following demo, wrapping around.
func (s *Switcher) Next() {
	s.current = (s.current + 1) % len(s.Demos)
	s.Log.Debug("demo switched", "demo", s.Name())
}

// Quit reports whether Q was pressed.
func (s *Switcher) Quit() bool { return s.quit }
