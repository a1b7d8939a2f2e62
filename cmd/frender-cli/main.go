// CLI-only version (no GUI dependencies)
package main

import (
	"errors"
	"fmt"
	"os"

	"frender/internal/cli"
)

func main() {
	env, err := cli.Setup("", os.Stdout)
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
	}

	cmds := cli.Headless()
	if len(os.Args) < 2 {
		cli.PrintUsage(os.Stdout, cmds)
		os.Exit(1)
	}

	if err := cli.Run(env, cmds, os.Args[1:]); err != nil {
		fmt.Printf("Error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			cli.PrintUsage(os.Stdout, cmds)
		}
		os.Exit(1)
	}
}
