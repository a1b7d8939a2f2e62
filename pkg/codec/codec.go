// Package codec moves canvases to and from image files.
//
// Decoding goes through image.Decode with PNG, JPEG, GIF, BMP, TIFF and
// WebP registered. Encoding writes PNG, JPEG, BMP, TIFF or a single page
// PDF. Pixels cross the boundary as packed ARGB: on load every four RGBA
// bytes become one Color with alpha as the most significant byte, on save
// the alpha channel is dropped.
package codec

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"frender/pkg/raster"
)

// ErrUnsupportedFormat is returned for file types that cannot be written
// (or read) by this package.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format names an output encoding.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	PDF  Format = "pdf"
)

// Formats lists the encodable formats.
var Formats = []Format{PNG, JPEG, BMP, TIFF, PDF}

// ParseFormat maps a name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	switch s {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "pdf":
		return PDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Load decodes the image at path into a new canvas.
func Load(path string) (*raster.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	c, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return c, nil
}

// Decode reads any registered image format. It also returns the format
// name reported by image.Decode.
func Decode(r io.Reader) (*raster.Canvas, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, "", err
	}
	return FromImage(img), name, nil
}

// FromImage converts any image into a canvas.
func FromImage(img image.Image) *raster.Canvas {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Copy(nrgba, image.Point{}, img, b, draw.Src, nil)
	}
	return raster.FromBuffer(b.Dx(), b.Dy(), UnpackRGBA(nrgba.Pix, b.Dx(), b.Dy(), nrgba.Stride))
}

// UnpackRGBA turns rows of R,G,B,A bytes into packed colors.
func UnpackRGBA(pix []byte, width, height, stride int) []raster.Color {
	out := make([]raster.Color, 0, width*height)
	for y := 0; y < height; y++ {
		row := pix[y*stride : y*stride+width*4]
		for x := 0; x < width; x++ {
			p := row[x*4 : x*4+4]
			out = append(out, raster.ARGB(p[3], p[0], p[1], p[2]))
		}
	}
	return out
}

// PackRGB returns the R,G,B bytes of every color, dropping alpha.
func PackRGB(buf []raster.Color) []byte {
	out := make([]byte, 0, len(buf)*3)
	for _, c := range buf {
		out = append(out, c.R(), c.G(), c.B())
	}
	return out
}

// ToImage returns an opaque RGBA image of the canvas.
func ToImage(c *raster.Canvas) *image.RGBA {
	w, h := c.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rgb := PackRGB(c.Buffer())
	for i := 0; i < w*h; i++ {
		copy(img.Pix[i*4:i*4+3], rgb[i*3:i*3+3])
		img.Pix[i*4+3] = 0xFF
	}
	return img
}

// Resize scales the canvas to w by h using nearest-neighbor sampling.
func Resize(c *raster.Canvas, w, h int) *raster.Canvas {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.ToNRGBA(), c.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

// Options tunes encoding.
type Options struct {
	// Quality for JPEG, 1-100.
	Quality int
	// Compression for TIFF (deflate when true).
	Compress bool
	// Title is stored in PDF metadata.
	Title string
}

// DefaultOptions returns the encoding defaults.
func DefaultOptions() Options {
	return Options{Quality: 90, Compress: true, Title: "frender frame"}
}

// Encode writes the canvas in the given format.
func Encode(w io.Writer, c *raster.Canvas, format Format, opts Options) error {
	img := ToImage(c)
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		q := opts.Quality
		if q < 1 || q > 100 {
			q = DefaultOptions().Quality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		ct := tiff.Uncompressed
		if opts.Compress {
			ct = tiff.Deflate
		}
		return tiff.Encode(w, img, &tiff.Options{Compression: ct})
	case PDF:
		return encodePDF(w, img, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Save writes the canvas to path, picking the format from the extension.
func Save(path string, c *raster.Canvas, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
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
	if err := Encode(f, c, format, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return f.Close()
}
