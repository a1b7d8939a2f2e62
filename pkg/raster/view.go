package raster

import "frender/pkg/geom"

// View is the part of a canvas's state that shapes how drawing calls land
// in the buffer: a clip rectangle and an optional transform.
type View struct {
	clip      geom.Rect
	transform *geom.Transform2D
}

// Clip returns the clip rectangle.
func (v *View) Clip() geom.Rect {
	return v.clip
}

// Transform returns the active transform, if any.
func (v *View) Transform() (geom.Transform2D, bool) {
	if v.transform == nil {
		return geom.Identity(), false
	}
	return *v.transform, true
}

// SetTransform activates t for subsequent draw and marker calls.
func (v *View) SetTransform(t geom.Transform2D) {
	v.transform = &t
}

// ClearTransform deactivates the transform.
func (v *View) ClearTransform() {
	v.transform = nil
}

func (v View) clone() View {
	if v.transform != nil {
		t := *v.transform
		v.transform = &t
	}
	return v
}

// viewStack saves and restores views around nested drawing.
type viewStack struct {
	views []View
}

func (s *viewStack) push(v View) {
	s.views = append(s.views, v.clone())
}

func (s *viewStack) pop() (View, bool) {
	if len(s.views) == 0 {
		return View{}, false
	}
	v := s.views[len(s.views)-1]
	s.views = s.views[:len(s.views)-1]
	return v, true
}

func (s *viewStack) depth() int {
	return len(s.views)
}
