// Package api provides a small public API over the rasterizer: open a
// scene or image, render it to a frame and export the result.
package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"frender/pkg/codec"
	"frender/pkg/raster"
	"frender/pkg/scene"
)

// ErrFrameTooLarge is returned when the scaled frame would be larger than
// scene.MaxSide on a side.
var ErrFrameTooLarge = errors.New("frame too large")

// Kind tells what a Document was opened from.
type Kind string

const (
	KindScene Kind = "scene"
	KindImage Kind = "image"
)

// Document is something that can be rendered to a frame: a scene file or
// a decoded image.
type Document struct {
	path  string
	kind  Kind
	scene *scene.Scene
	image *raster.Canvas

	info *DocumentInfo
}

// DocumentInfo contains document metadata.
type DocumentInfo struct {
	Path   string
	Kind   Kind
	Format string
	Width  int
	Height int
	// OutputWidth and OutputHeight are the frame size before render
	// options are applied.
	OutputWidth  int
	OutputHeight int
	Ops          int
	Layers       int
	FileSize     int64
}

// Open opens a scene (.yaml, .yml, .json) or an image file.
func Open(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var doc *Document
	switch ext {
	case ".yaml", ".yml", ".json":
		s, err := scene.Load(path)
		if err != nil {
			return nil, err
		}
		doc = FromScene(s)
	default:
		img, err := codec.Load(path)
		if err != nil {
			return nil, err
		}
		doc = FromCanvas(img)
		doc.info.Format = strings.TrimPrefix(ext, ".")
	}

	doc.path = path
	doc.info.Path = path
	if st, err := os.Stat(path); err == nil {
		doc.info.FileSize = st.Size()
	}
	return doc, nil
}

// FromScene wraps an in-memory scene.
func FromScene(s *scene.Scene) *Document {
	ow, oh := s.OutputSize()
	ops := len(s.Ops)
	for _, l := range s.Layers {
		ops += len(l.Ops)
	}
	return &Document{
		kind:  KindScene,
		scene: s,
		info: &DocumentInfo{
			Kind:         KindScene,
			Format:       "scene",
			Width:        s.Width,
			Height:       s.Height,
			OutputWidth:  ow,
			OutputHeight: oh,
			Ops:          ops,
			Layers:       len(s.Layers),
		},
	}
}

// FromCanvas wraps an existing canvas. The canvas is not copied.
func FromCanvas(c *raster.Canvas) *Document {
	w, h := c.Size()
	return &Document{
		kind:  KindImage,
		image: c,
		info: &DocumentInfo{
			Kind:         KindImage,
			Width:        w,
			Height:       h,
			OutputWidth:  w,
			OutputHeight: h,
		},
	}
}

// Kind returns what the document was opened from.
func (d *Document) Kind() Kind {
	return d.kind
}

// Info returns document metadata.
func (d *Document) Info() *DocumentInfo {
	return d.info
}

// Scene returns the scene of a scene document, or nil.
func (d *Document) Scene() *scene.Scene {
	return d.scene
}

// Render renders the document with default options.
func (d *Document) Render(opts ...Option) (*raster.Canvas, error) {
	return d.RenderWithOptions(NewRenderOptions(opts...))
}

// RenderWithOptions renders the document to a new frame.
func (d *Document) RenderWithOptions(opts RenderOptions) (*raster.Canvas, error) {
	var frame *raster.Canvas
	switch d.kind {
	case KindScene:
		in := scene.NewInterpreter(d.scene)
		c, err := in.RenderPending()
		if err != nil {
			return nil, fmt.Errorf("failed to render scene: %w", err)
		}
		frame = c
	case KindImage:
		frame = d.image.Clone()
	default:
		return nil, fmt.Errorf("document has no content")
	}
	return finish(frame, opts)
}

// finish places frame on the background, scaled, and replays markers.
func finish(frame *raster.Canvas, opts RenderOptions) (*raster.Canvas, error) {
	k := max(opts.Scale, 1)
	w, h := frame.Size()
	if !scene.FitsSide(w, k) || !scene.FitsSide(h, k) {
		return nil, fmt.Errorf("%w: %dx%d at scale %d is larger than %d pixels per side",
			ErrFrameTooLarge, w, h, k, scene.MaxSide)
	}

	out := raster.New(w*k, h*k)
	out.Background(opts.Background)
	out.Image(frame, 0, 0, k)
	if opts.Grid {
		scene.DrawGrid(out, k, opts.GridColor)
	}
	if opts.Markers {
		out.RenderMarkers()
	}
	return out, nil
}

// RenderToFile renders the document and saves it.
func (d *Document) RenderToFile(path string, export ExportOptions, opts ...Option) (*raster.Canvas, error) {
	frame, err := d.Render(opts...)
	if err != nil {
		return nil, err
	}
	if err := Export(path, frame, export); err != nil {
		return nil, err
	}
	return frame, nil
}

// Export saves a frame. When export.Format is empty the format comes from
// the file extension.
func Export(path string, frame *raster.Canvas, export ExportOptions) error {
	if export.Format == "" {
		return codec.Save(path, frame, export.codec())
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := codec.Encode(f, frame, export.Format, export.codec()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", export.Format, err)
	}
	return f.Close()
}

// Close releases resources associated with the document.
func (d *Document) Close() error {
	return nil
}
