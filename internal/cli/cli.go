// Package cli implements the subcommands shared by the frender binaries.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"frender/internal/config"
	applog "frender/internal/log"
	"frender/pkg/raster"
)

// ErrUsage marks errors caused by bad arguments.
var ErrUsage = errors.New("usage")

// Env carries what commands need: loaded config, logger and output.
type Env struct {
	Config config.AppConfig
	Log    *slog.Logger
	Out    io.Writer
}

// Command runs one subcommand with its arguments.
type Command func(env *Env, args []string) error

// Commands maps subcommand names to implementations.
type Commands map[string]Command

// Headless returns the commands that need no window.
func Headless() Commands {
	return Commands{
		"info":    cmdInfo,
		"ops":     cmdOps,
		"render":  cmdRender,
		"demo":    cmdDemo,
		"schema":  cmdSchema,
		"new":     cmdNew,
		"config":  cmdConfig,
		"version": cmdVersion,
	}
}

// Names lists the command names in order.
func (c Commands) Names() []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Setup loads the configuration from path (the per-user file when empty)
// and installs the application logger, including the rasterizer's.
func Setup(path string, out io.Writer) (*Env, error) {
	cfg, err := config.Load(path)
	l := applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	raster.SetLogger(l.With(slog.String("component", "raster")))
	env := &Env{Config: cfg, Log: l, Out: out}
	if err != nil {
		return env, fmt.Errorf("load config: %w", err)
	}
	return env, nil
}

// Run dispatches args[0] to the matching command.
func Run(env *Env, cmds Commands, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}
	name := strings.ToLower(args[0])
	if name == "help" || name == "-h" || name == "--help" {
		PrintUsage(env.Out, cmds)
		return nil
	}
	cmd, ok := cmds[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	applog.WithOperation(env.Log, name).Debug("command started", "args", args[1:])
	return cmd(env, args[1:])
}

var usage = map[string]string{
	"info":    "info <file>                  Show scene or image metadata",
	"ops":     "ops <scene.yaml>             List scene operations as they execute",
	"render":  "render <file> [options]      Render a scene or image to a file\n    -o <output>                Output file (default: output.png)\n    -scale <k>                 Integer magnification (default: scene scale or 1)\n    -grid                      Outline enlarged pixels\n    -format <png|jpeg|bmp|tiff|pdf>\n    -no-markers                Leave markers out of the frame",
	"demo":    "demo <name> [options]        Render one frame of a demo headless\n    -o <output>                Output file (default: <name>.png)\n    -size <w>x<h>              Frame size (default: window size from config)\n    -scale <k>                 Preview magnification (default: config demo.scale)",
	"schema":  "schema                       Print the scene JSON Schema",
	"new":     "new [scene.yaml]             Write an example scene (default: scene.yaml)",
	"config":  "config [init]                Show the effective configuration, or write defaults",
	"version": "version                      Print the version",
	"gui":     "gui [demo]                   Open the demo window",
}

// PrintUsage writes the help text for cmds.
func PrintUsage(w io.Writer, cmds Commands) {
	fmt.Fprintln(w, `frender - a small software rasterizer

Usage:
  frender <command> [arguments]

Commands:`)
	for _, n := range cmds.Names() {
		if u, ok := usage[n]; ok {
			fmt.Fprintf(w, "  %s\n", u)
		}
	}
	fmt.Fprintln(w, `
Examples:
  frender new scene.yaml
  frender render scene.yaml -o out.png -scale 10 -grid
  frender demo lines -size 1280x720 -o lines.png`)
}
