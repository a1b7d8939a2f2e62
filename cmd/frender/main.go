package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"frender/internal/cli"
	"frender/internal/demo"
	"frender/internal/gui"
	applog "frender/internal/log"
	"frender/pkg/codec"
)

func main() {
	env, err := cli.Setup("", os.Stdout)
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
	}

	cmds := cli.Headless()
	cmds["gui"] = cmdGUI

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"gui"}
	}

	if err := cli.Run(env, cmds, args); err != nil {
		fmt.Printf("Error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			cli.PrintUsage(os.Stdout, cmds)
		}
		os.Exit(1)
	}
}

func cmdGUI(env *cli.Env, args []string) error {
	name := env.Config.Demo.Name
	if len(args) > 0 {
		name = strings.ToLower(args[0])
	}
	if !slices.Contains(demo.Names(), name) {
		return fmt.Errorf("unknown demo %q (available: %s)", name, strings.Join(demo.Names(), ", "))
	}

	format, err := codec.ParseFormat(env.Config.Export.Format)
	if err != nil {
		format = codec.PNG
	}

	switcher := demo.All(env.Config.Demo.Scale, name)
	switcher.Save = demo.FileSaver(env.Config.Export.Dir, format)

	gui.NewApp(env.Config, switcher, applog.WithComponent("gui")).Run()
	return nil
}
