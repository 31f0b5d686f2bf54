package main

import (
	"context"
	"os"

	"github.com/StephanMalan/project-toml-parser/internal/cli"
	"github.com/StephanMalan/project-toml-parser/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI runs the root command. Only usage errors are returned; a failed
// lookup prints nothing and returns nil.
func runCLI(args []string) error {
	// Flag parse errors are returned before the command's Before hook runs,
	// so the stderr TTY check has to happen here too.
	printer.SetNoColor(false)
	return cli.New(os.Stdout).Run(context.Background(), args)
}
