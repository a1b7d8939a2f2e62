package api

import (
	"frender/pkg/codec"
	"frender/pkg/raster"
)

// RenderOptions configures rendering behavior.
type RenderOptions struct {
	// Scale enlarges the finished frame by an integer factor.
	// Default: 1
	Scale int

	// Background fills the output before the frame is blitted onto it.
	// Transparent frame pixels show it.
	// Default: black
	Background raster.Color

	// Grid outlines each enlarged pixel when Scale > 1.
	// Default: false
	Grid bool

	// GridColor is the color of the grid lines.
	// Default: gray
	GridColor raster.Color

	// Markers replays queued markers before the frame is returned.
	// Default: true
	Markers bool
}

// DefaultRenderOptions returns render options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Scale:      1,
		Background: raster.Black,
		Grid:       false,
		GridColor:  raster.Gray,
		Markers:    true,
	}
}

// Option is a functional option for configuring RenderOptions.
type Option func(*RenderOptions)

// Scale sets the integer scale factor. Values below one are ignored.
func Scale(k int) Option {
	return func(o *RenderOptions) {
		if k >= 1 {
			o.Scale = k
		}
	}
}

// Background sets the background color.
func Background(c raster.Color) Option {
	return func(o *RenderOptions) {
		o.Background = c
	}
}

// Grid enables the pixel grid overlay.
func Grid(c raster.Color) Option {
	return func(o *RenderOptions) {
		o.Grid = true
		o.GridColor = c
	}
}

// NoMarkers leaves markers queued on the returned canvas.
func NoMarkers() Option {
	return func(o *RenderOptions) {
		o.Markers = false
	}
}

// NewRenderOptions creates options from functional options.
func NewRenderOptions(opts ...Option) RenderOptions {
	o := DefaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Apply applies functional options to existing options.
func (o *RenderOptions) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// ExportOptions configures saving rendered frames.
type ExportOptions struct {
	// Format is the output encoding. Empty means "pick from the file
	// extension".
	Format codec.Format

	// Quality for JPEG (1-100).
	Quality int

	// Compress enables deflate for TIFF.
	Compress bool

	// Title is stored in PDF metadata.
	Title string
}

// DefaultExportOptions returns default export options.
func DefaultExportOptions() ExportOptions {
	d := codec.DefaultOptions()
	return ExportOptions{Quality: d.Quality, Compress: d.Compress, Title: d.Title}
}

// PNG returns export options for PNG format.
func PNG() ExportOptions {
	o := DefaultExportOptions()
	o.Format = codec.PNG
	return o
}

// JPEG returns export options for JPEG format with quality.
func JPEG(quality int) ExportOptions {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	o := DefaultExportOptions()
	o.Format = codec.JPEG
	o.Quality = quality
	return o
}

// PDF returns export options for a single page PDF.
func PDF(title string) ExportOptions {
	o := DefaultExportOptions()
	o.Format = codec.PDF
	o.Title = title
	return o
}

func (e ExportOptions) codec() codec.Options {
	return codec.Options{Quality: e.Quality, Compress: e.Compress, Title: e.Title}
}
