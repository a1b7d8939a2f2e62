package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"frender/internal/config"
	"frender/internal/demo"
	"frender/internal/input"
	"frender/internal/version"
	"frender/pkg/api"
	"frender/pkg/codec"
	"frender/pkg/geom"
	"frender/pkg/raster"
	"frender/pkg/scene"
)

func cmdInfo(env *Env, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: frender info <file>", ErrUsage)
	}
	doc, err := api.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer doc.Close()

	info := doc.Info()
	w := env.Out
	fmt.Fprintf(w, "File: %s\n", info.Path)
	fmt.Fprintln(w, "────────────────────────────────────────")
	fmt.Fprintf(w, "Kind: %s\n", info.Kind)
	if info.Format != "" {
		fmt.Fprintf(w, "Format: %s\n", info.Format)
	}
	fmt.Fprintf(w, "File size: %s\n", humanize.IBytes(uint64(info.FileSize)))
	fmt.Fprintf(w, "Canvas: %d × %d (%s pixels)\n", info.Width, info.Height, humanize.Comma(int64(info.Width*info.Height)))
	if info.OutputWidth != info.Width || info.OutputHeight != info.Height {
		fmt.Fprintf(w, "Output: %d × %d\n", info.OutputWidth, info.OutputHeight)
	}
	if info.Kind == api.KindScene {
		fmt.Fprintf(w, "Operations: %d\n", info.Ops)
		fmt.Fprintf(w, "Layers: %d\n", info.Layers)
	}
	return nil
}

func cmdOps(env *Env, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: frender ops <scene.yaml>", ErrUsage)
	}
	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}

	n := 0
	in := scene.NewInterpreter(s)
	in.OnOp = func(layer string, index int, op scene.Op) {
		n++
		prefix := ""
		if layer != "" {
			prefix = "  [" + layer + "] "
		}
		fmt.Fprintf(env.Out, "%4d: %s%s\n", index+1, prefix, describeOp(op))
	}
	fmt.Fprintf(env.Out, "=== %s (%d × %d) ===\n\n", args[0], s.Width, s.Height)
	if _, err := in.Render(); err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "\n%d operations executed\n", n)
	return nil
}

// describeOp formats the fields an operation actually uses.
func describeOp(op scene.Op) string {
	var b strings.Builder
	b.WriteString(op.Op)
	if op.Marker {
		b.WriteString(" (marker)")
	}
	field := func(name string, v interface{}) {
		fmt.Fprintf(&b, " %s=%v", name, v)
	}
	if op.Color != "" {
		field("color", op.Color)
	}
	if op.Stroke != "" {
		field("stroke", op.Stroke)
	}
	if op.Fill != "" {
		field("fill", op.Fill)
	}
	if op.From != nil {
		field("from", op.From)
		field("to", op.To)
	}
	if op.Center != nil {
		field("center", op.Center)
		field("radius", op.Radius)
	}
	if op.At != nil {
		field("at", op.At)
	}
	if op.Size != nil {
		field("size", op.Size)
	}
	if op.Points != nil {
		field("points", op.Points)
	}
	if op.Translate != nil {
		field("translate", op.Translate)
	}
	if op.ScaleBy != nil {
		field("scale", op.ScaleBy)
	}
	if op.Rect != nil {
		field("rect", op.Rect)
	}
	if op.Layer != "" {
		field("layer", op.Layer)
	}
	if op.Factor != 0 {
		field("factor", op.Factor)
	}
	if op.Width > 1 {
		field("width", op.Width)
	}
	if op.Middle {
		b.WriteString(" middle")
	}
	return b.String()
}

func cmdRender(env *Env, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: frender render <file> [-o output.png] [-scale k] [-grid] [-format f] [-no-markers]", ErrUsage)
	}

	path := args[0]
	output := "output.png"
	var opts []api.Option
	export := api.DefaultExportOptions()

	// Parse arguments
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "-scale":
			if i+1 < len(args) {
				k, err := strconv.Atoi(args[i+1])
				if err != nil || k < 1 {
					return fmt.Errorf("%w: -scale needs a positive integer, got %q", ErrUsage, args[i+1])
				}
				opts = append(opts, api.Scale(k))
				i++
			}
		case "-grid":
			opts = append(opts, api.Grid(raster.Gray))
		case "-no-markers":
			opts = append(opts, api.NoMarkers())
		case "-format":
			if i+1 < len(args) {
				f, err := codec.ParseFormat(args[i+1])
				if err != nil {
					return err
				}
				export.Format = f
				i++
			}
		default:
			return fmt.Errorf("%w: unknown option %q", ErrUsage, args[i])
		}
	}

	doc, err := api.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer doc.Close()

	fmt.Fprintf(env.Out, "Rendering %s...\n", path)
	frame, err := doc.RenderToFile(output, export, opts...)
	if err != nil {
		return err
	}
	return reportSaved(env, output, frame)
}

func cmdDemo(env *Env, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: frender demo <%s> [-o output.png] [-size WxH] [-scale k]", ErrUsage, strings.Join(demo.Names(), "|"))
	}

	name := args[0]
	output := name + "." + env.exportFormat()
	w, h := env.Config.Window.Width, env.Config.Window.Height
	scale := env.Config.Demo.Scale

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "-size":
			if i+1 < len(args) {
				sz, err := parseSize(args[i+1])
				if err != nil {
					return err
				}
				w, h = sz.XY()
				i++
			}
		case "-scale":
			if i+1 < len(args) {
				k, err := strconv.Atoi(args[i+1])
				if err != nil || k < 1 {
					return fmt.Errorf("%w: -scale needs a positive integer, got %q", ErrUsage, args[i+1])
				}
				scale = k
				i++
			}
		default:
			return fmt.Errorf("%w: unknown option %q", ErrUsage, args[i])
		}
	}

	app, err := demo.New(name, scale)
	if err != nil {
		return err
	}
	frame := demo.RenderFrame(app, w, h, input.Snapshot{})
	if err := api.Export(output, frame, api.DefaultExportOptions()); err != nil {
		return err
	}
	return reportSaved(env, output, frame)
}

// parseSize reads "WxH".
func parseSize(s string) (geom.Vec2, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		w, errW := strconv.Atoi(ws)
		h, errH := strconv.Atoi(hs)
		if errW == nil && errH == nil && w > 0 && h > 0 {
			return geom.V(w, h), nil
		}
	}
	return geom.Vec2{}, fmt.Errorf("%w: size must look like 640x480, got %q", ErrUsage, s)
}

func reportSaved(env *Env, path string, frame *raster.Canvas) error {
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "Saved %s (%dx%d pixels, %s)\n", path, frame.Width(), frame.Height(), humanize.IBytes(uint64(st.Size())))
	return nil
}

func (env *Env) exportFormat() string {
	if f, err := codec.ParseFormat(env.Config.Export.Format); err == nil {
		return string(f)
	}
	return string(codec.PNG)
}

func cmdSchema(env *Env, _ []string) error {
	_, err := env.Out.Write(scene.Schema())
	return err
}

func cmdNew(env *Env, args []string) error {
	path := "scene.yaml"
	force := false
	for _, a := range args {
		if a == "-f" {
			force = true
		} else {
			path = a
		}
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use -f to overwrite)", path)
	}
	if err := ExampleScene().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "Wrote %s\n", path)
	return nil
}

// ExampleScene is the scene written by "frender new": a filled circle,
// two diagonals with centered markers and a scaled layer, previewed at 20x.
func ExampleScene() *scene.Scene {
	return scene.NewBuilder(40, 30).
		Scaled(20, true).
		Layer("tile", 6, 6, func(l *scene.Builder) {
			l.Background(raster.Blue).
				Line(0, 0, 5, 5, raster.Yellow).
				Line(0, 5, 5, 0, raster.Red).Marker()
		}).
		Background(raster.Black).
		Circle(5, 20, 5, raster.Red, raster.RGB(96, 0, 0)).
		Line(1, 1, 38, 28, raster.White).
		Line(1, 1, 38, 28, raster.Red).Marker().Middle().
		Line(1, 28, 38, 1, raster.White).
		Line(1, 28, 38, 1, raster.Red).Marker().Middle().
		Triangle(geom.V(20, 3), geom.V(30, 12), geom.V(14, 12), raster.Green, raster.RGB(0, 80, 0)).
		Rect(24, 18, 8, 6, raster.Yellow, raster.Transparent).
		Image("tile", 30, 2, 1).
		Build()
}

func cmdConfig(env *Env, args []string) error {
	if len(args) > 0 && args[0] == "init" {
		path := ""
		if len(args) > 1 {
			path = args[1]
		}
		if path == "" {
			p, err := config.ConfigPath()
			if err != nil {
				return err
			}
			path = p
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := config.Save(config.Defaults(), path); err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "Wrote %s\n", path)
		return nil
	}

	data, err := yaml.Marshal(env.Config)
	if err != nil {
		return err
	}
	env.Out.Write(data)

	var overridden []string
	for _, key := range []string{"window.width", "window.height", "window.fps", "demo.name", "demo.scale",
		"logging.level", "logging.format", "logging.source", "logging.file"} {
		if name, ok := config.EnvOverrideFor(key); ok {
			overridden = append(overridden, fmt.Sprintf("  %s <- %s", key, name))
		}
	}
	if len(overridden) > 0 {
		fmt.Fprintf(env.Out, "\n# overridden by environment:\n# %s\n", strings.Join(overridden, "\n# "))
	}
	return nil
}

func cmdVersion(env *Env, _ []string) error {
	fmt.Fprintf(env.Out, "frender %s\n", version.Version)
	return nil
}
