package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/StephanMalan/project-toml-parser/internal/config"
	"github.com/StephanMalan/project-toml-parser/internal/core"
	"github.com/StephanMalan/project-toml-parser/internal/discovery"
	"github.com/StephanMalan/project-toml-parser/internal/output"
	"github.com/StephanMalan/project-toml-parser/internal/printer"
	urfavecli "github.com/urfave/cli/v3"
)

// options holds the parsed command line.
type options struct {
	path       string
	format     output.Format
	json       bool
	configPath string
	debug      bool
}

// optionsFromCommand validates flags and arguments. Only usage errors are
// returned from here; lookup failures never are.
func optionsFromCommand(cmd *urfavecli.Command) (options, error) {
	args := cmd.Args()
	if args.Len() == 0 {
		return options{}, fmt.Errorf("missing required argument <path>")
	}
	if args.Len() > 2 {
		return options{}, fmt.Errorf("too many arguments: %v", args.Slice())
	}

	formatName := cmd.String("format")
	if !cmd.IsSet("format") && args.Len() == 2 {
		formatName = args.Get(1)
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return options{}, err
	}

	return options{
		path:       args.Get(0),
		format:     format,
		json:       cmd.Bool("json"),
		configPath: cmd.String("config"),
		debug:      cmd.Bool("debug"),
	}, nil
}

// run performs the lookup and prints the result. Every lookup failure is
// swallowed: the run succeeds with nothing written to stdout.
func run(ctx context.Context, opts options, stdout io.Writer) error {
	fsys := core.NewOSFileSystem()

	var cfg *config.Config
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(ctx, fsys, opts.configPath)
		if err != nil {
			return err
		}
		if opts.debug {
			for _, w := range cfg.Warnings {
				printer.PrintWarning(fmt.Sprintf("warning: %s: %s", w.Category, w.Message))
			}
		}
	}

	start, err := canonicalize(opts.path)
	if err != nil {
		debugf(opts, "cannot resolve %q: %v", opts.path, err)
		return nil
	}

	svc := discovery.NewService(fsys, cfg.Kinds())
	details, match, err := svc.Describe(ctx, start)
	if err != nil {
		debugf(opts, "%v", err)
		return nil
	}
	debugf(opts, "using %s (%s)", match.Path, match.Kind.ID)

	line := output.Render(*details, opts.format)
	if opts.json {
		line, err = output.RenderJSON(*details)
		if err != nil {
			debugf(opts, "%v", err)
			return nil
		}
	}

	_, err = fmt.Fprintln(stdout, line)
	return err
}

// canonicalize returns the absolute, symlink-free form of path. It fails when
// path does not exist.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func debugf(opts options, format string, args ...any) {
	if opts.debug {
		printer.Debug(format, args...)
	}
}
