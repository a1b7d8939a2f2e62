package raster

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a packed 32-bit ARGB value laid out as 0xAARRGGBB.
// A color is transparent when its alpha byte is zero.
type Color uint32

// Named colors. All are opaque except Transparent.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Yellow      Color = 0xFFFFFF00
	Cyan        Color = 0xFF00FFFF
	Magenta     Color = 0xFFFF00FF
	Gray        Color = 0xFF808080
	DarkGray    Color = 0xFF303030
)

// ColorFromUint32 reinterprets a packed ARGB value.
func ColorFromUint32(v uint32) Color {
	return Color(v)
}

// ARGB packs the four channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// Uint32 returns the packed value.
func (c Color) Uint32() uint32 { return uint32(c) }

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// IsTransparent reports whether the alpha byte is zero.
func (c Color) IsTransparent() bool {
	return c.A() == 0
}

// Opaque returns c with the alpha byte forced to 0xFF.
func (c Color) Opaque() Color {
	return c | 0xFF000000
}

// WithAlpha returns c with its alpha byte replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// RGBA implements color.Color. The channels are treated as
// non-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ColorModel converts arbitrary colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return ColorFrom(c)
})

// ColorFrom converts any color.Color.
func ColorFrom(c color.Color) Color {
	if v, ok := c.(Color); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// ParseHex parses "#RRGGBB", "#AARRGGBB" or the same without the hash.
// Six digit values are opaque.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var v uint32
	if _, err := fmt.Sscanf(s, "%x", &v); err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(s) {
	case 6:
		return Color(v).Opaque(), nil
	case 8:
		return Color(v), nil
	}
	return 0, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
}

// HSV returns an opaque color from hue in degrees and saturation and value
// in [0, 1].
func HSV(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp(s, 0, 1)
	v = clamp(v, 0, 1)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGB(to8(r+m), to8(g+m), to8(b+m))
}

func to8(f float64) uint8 {
	return uint8(math.Round(clamp(f, 0, 1) * 255))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Palette is an ordered set of colors used by the demos for cycling.
type Palette []Color

// DefaultPalette is a small set of distinct opaque colors.
var DefaultPalette = Palette{Red, Green, Blue, Yellow, Cyan, Magenta, White}

// At returns the color at index i, wrapping around.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return Transparent
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
