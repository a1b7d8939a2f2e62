package gui

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"frender/internal/input"
	"frender/pkg/geom"
)

// FrameView shows the rendered frame scaled to fit, with whole-pixel
// magnification so every frame pixel maps to a square block. Mouse
// events are reported in frame pixel coordinates.
type FrameView struct {
	widget.BaseWidget

	image   *canvas.Image
	frameW  int
	frameH  int
	tracker *input.Tracker
}

var (
	_ desktop.Mouseable = (*FrameView)(nil)
	_ desktop.Hoverable = (*FrameView)(nil)
)

// NewFrameView creates a view for w x h frames feeding pointer events to
// tracker.
func NewFrameView(w, h int, tracker *input.Tracker) *FrameView {
	v := &FrameView{frameW: w, frameH: h, tracker: tracker}
	v.ExtendBaseWidget(v)

	v.image = canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, w, h)))
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScalePixels
	return v
}

// SetImage replaces the displayed frame.
func (v *FrameView) SetImage(img image.Image) {
	v.image.Image = img
	v.image.Refresh()
}

// CreateRenderer creates the renderer for this widget.
func (v *FrameView) CreateRenderer() fyne.WidgetRenderer {
	return &frameViewRenderer{view: v}
}

// MouseDown records a button press.
func (v *FrameView) MouseDown(ev *desktop.MouseEvent) {
	v.tracker.MoveTo(v.toPixel(ev.Position))
	if b, ok := mouseButton(ev.Button); ok {
		v.tracker.ButtonDown(b)
	}
}

// MouseUp records a button release.
func (v *FrameView) MouseUp(ev *desktop.MouseEvent) {
	v.tracker.MoveTo(v.toPixel(ev.Position))
	if b, ok := mouseButton(ev.Button); ok {
		v.tracker.ButtonUp(b)
	}
}

func (v *FrameView) MouseIn(ev *desktop.MouseEvent) { v.tracker.MoveTo(v.toPixel(ev.Position)) }

func (v *FrameView) MouseMoved(ev *desktop.MouseEvent) { v.tracker.MoveTo(v.toPixel(ev.Position)) }

func (v *FrameView) MouseOut() {}

func (v *FrameView) toPixel(p fyne.Position) geom.Vec2 {
	return toPixel(p, v.Size(), v.frameW, v.frameH)
}

func mouseButton(b desktop.MouseButton) (input.MouseButton, bool) {
	switch b {
	case desktop.MouseButtonPrimary:
		return input.MouseLeft, true
	case desktop.MouseButtonSecondary:
		return input.MouseRight, true
	case desktop.MouseButtonTertiary:
		return input.MouseMiddle, true
	}
	return 0, false
}

// fit returns the magnification and top-left corner of a w x h frame
// centered in size. Frames larger than size are shrunk.
func fit(size fyne.Size, w, h int) (zoom float32, origin fyne.Position) {
	if w <= 0 || h <= 0 {
		return 1, fyne.NewPos(0, 0)
	}
	z := math.Min(float64(size.Width)/float64(w), float64(size.Height)/float64(h))
	if z >= 1 {
		z = math.Floor(z)
	}
	if z <= 0 {
		z = 1
	}
	zoom = float32(z)
	origin = fyne.NewPos((size.Width-float32(w)*zoom)/2, (size.Height-float32(h)*zoom)/2)
	return zoom, origin
}

// toPixel maps a widget position to frame pixel coordinates.
func toPixel(p fyne.Position, size fyne.Size, w, h int) geom.Vec2 {
	zoom, origin := fit(size, w, h)
	x := math.Floor(float64((p.X - origin.X) / zoom))
	y := math.Floor(float64((p.Y - origin.Y) / zoom))
	return geom.V(int(x), int(y))
}

type frameViewRenderer struct {
	view *FrameView
}

func (r *frameViewRenderer) Layout(size fyne.Size) {
	zoom, origin := fit(size, r.view.frameW, r.view.frameH)
	r.view.image.Move(origin)
	r.view.image.Resize(fyne.NewSize(float32(r.view.frameW)*zoom, float32(r.view.frameH)*zoom))
}

func (r *frameViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.view.frameW), float32(r.view.frameH))
}

func (r *frameViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image}
}

func (r *frameViewRenderer) Refresh() {
	r.view.image.Refresh()
}

func (r *frameViewRenderer) Destroy() {}
