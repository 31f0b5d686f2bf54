package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/StephanMalan/project-toml-parser/internal/output"
	"github.com/StephanMalan/project-toml-parser/internal/printer"
	"github.com/StephanMalan/project-toml-parser/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command. Project identifiers are
// written to stdout; a nil stdout selects os.Stdout.
func New(stdout io.Writer) *urfavecli.Command {
	if stdout == nil {
		stdout = os.Stdout
	}

	return &urfavecli.Command{
		Name:      "project-toml-parser",
		Version:   fmt.Sprintf("v%s", version.GetVersion()),
		Usage:     "Print the name and version of the nearest enclosing project",
		ArgsUsage: "<path> [" + strings.Join(output.Names(), "|") + "]",
		UsageText: usageText(),
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: " + strings.Join(output.Names(), ", "),
				Value:   string(output.FormatBasic),
			},
			&urfavecli.BoolFlag{
				Name:  "json",
				Usage: "Print the project details as JSON",
			},
			&urfavecli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file declaring additional manifest kinds",
			},
			&urfavecli.BoolFlag{
				Name:  "debug",
				Usage: "Explain on stderr why nothing was printed",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored diagnostics",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			opts, err := optionsFromCommand(cmd)
			if err != nil {
				return err
			}
			return run(ctx, opts, stdout)
		},
	}
}

func usageText() string {
	var sb strings.Builder
	sb.WriteString(`project-toml-parser [options] <path> [format]

Walks upward from <path> until a Cargo.toml or pyproject.toml is found and
prints the project identifier. Nothing is printed when no manifest is found
or it cannot be read.

Formats:`)
	for _, f := range output.Formats() {
		fmt.Fprintf(&sb, "\n  %-9s %s", f, f.Template())
	}
	return sb.String()
}
