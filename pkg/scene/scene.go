// Package scene describes drawings as data. A scene file (YAML or JSON) is
// a list of drawing operations that the Interpreter replays onto a canvas.
package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"frender/pkg/raster"
)

var (
	// ErrInvalidScene is returned when a document fails schema validation
	// or cannot be decoded.
	ErrInvalidScene = errors.New("invalid scene")
	// ErrUnknownOp is returned for an operation name the interpreter does
	// not know.
	ErrUnknownOp = errors.New("unknown operation")
)

// MaxSide is the largest width or height, in pixels, of any canvas a scene
// render allocates.
const MaxSide = 16384

// FitsSide reports whether n pixels enlarged k times stay within MaxSide.
func FitsSide(n, k int) bool {
	return n >= 0 && k >= 1 && n <= MaxSide/k
}

// Scene is a drawing of Width x Height pixels.
type Scene struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Scale, when above one, renders the drawing and then blits it scaled
	// into the output, so markers land in the enlarged frame.
	Scale int `yaml:"scale,omitempty"`
	// Grid draws pixel cell borders over a scaled output.
	Grid bool `yaml:"grid,omitempty"`

	// Layers are named sub-drawings that "image" operations blit.
	Layers map[string]Layer `yaml:"layers,omitempty"`

	Ops []Op `yaml:"ops"`
}

// Layer is a named off-screen drawing.
type Layer struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Ops    []Op `yaml:"ops"`
}

// Op is a single drawing operation. Which fields apply depends on Op.
type Op struct {
	Op string `yaml:"op"`

	Color  string `yaml:"color,omitempty"`
	Stroke string `yaml:"stroke,omitempty"`
	Fill   string `yaml:"fill,omitempty"`

	From   []int   `yaml:"from,omitempty,flow"`
	To     []int   `yaml:"to,omitempty,flow"`
	Center []int   `yaml:"center,omitempty,flow"`
	Radius int     `yaml:"radius,omitempty"`
	At     []int   `yaml:"at,omitempty,flow"`
	Size   []int   `yaml:"size,omitempty,flow"`
	Points [][]int `yaml:"points,omitempty,flow"`

	Translate []int `yaml:"translate,omitempty,flow"`
	ScaleBy   []int `yaml:"scale,omitempty,flow"`
	Rect      []int `yaml:"rect,omitempty,flow"`

	Layer  string `yaml:"layer,omitempty"`
	Factor int    `yaml:"factor,omitempty"`

	Width  int  `yaml:"width,omitempty"`
	Middle bool `yaml:"middle,omitempty"`
	Marker bool `yaml:"marker,omitempty"`
}

// Operation names.
const (
	OpBackground     = "background"
	OpLine           = "line"
	OpCircle         = "circle"
	OpRect           = "rect"
	OpTriangle       = "triangle"
	OpImage          = "image"
	OpTransform      = "transform"
	OpResetTransform = "reset_transform"
	OpClip           = "clip"
	OpResetClip      = "reset_clip"
	OpPush           = "push"
	OpPop            = "pop"
	OpRenderMarkers  = "render_markers"
	OpClearMarkers   = "clear_markers"
)

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse validates data against the scene schema and decodes it. JSON is
// accepted as well since it is valid YAML.
func Parse(data []byte) (*Scene, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}

	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if err := s.CheckSize(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal encodes the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Save writes the scene as YAML.
func (s *Scene) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// CheckSize returns an ErrInvalidScene error when the scaled output or any
// layer is larger than MaxSide on a side.
func (s *Scene) CheckSize() error {
	k := max(s.Scale, 1)
	if !FitsSide(s.Width, k) || !FitsSide(s.Height, k) {
		return fmt.Errorf("%w: %dx%d at scale %d is larger than %d pixels per side",
			ErrInvalidScene, s.Width, s.Height, k, MaxSide)
	}
	for name, l := range s.Layers {
		if !FitsSide(l.Width, 1) || !FitsSide(l.Height, 1) {
			return fmt.Errorf("%w: layer %q is %dx%d, larger than %d pixels per side",
				ErrInvalidScene, name, l.Width, l.Height, MaxSide)
		}
	}
	return nil
}

// OutputSize returns the size of the rendered frame.
func (s *Scene) OutputSize() (int, int) {
	k := max(s.Scale, 1)
	return s.Width * k, s.Height * k
}

var namedColors = map[string]raster.Color{
	"transparent": raster.Transparent,
	"black":       raster.Black,
	"white":       raster.White,
	"red":         raster.Red,
	"green":       raster.Green,
	"blue":        raster.Blue,
	"yellow":      raster.Yellow,
	"cyan":        raster.Cyan,
	"magenta":     raster.Magenta,
	"gray":        raster.Gray,
	"grey":        raster.Gray,
	"darkgray":    raster.DarkGray,
}

// ParseColor accepts a color name or a hex value. An empty string yields
// def.
func ParseColor(s string, def raster.Color) (raster.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	return raster.ParseHex(s)
}
