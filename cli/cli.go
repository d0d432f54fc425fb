package cli

import (
	"context"

	"github.com/alecthomas/kong"

	logger "github.com/Subwoof01/sw-logger"
	"github.com/Subwoof01/sw-logger/cli/cmd"
	"github.com/Subwoof01/sw-logger/pkg"
)

// CLI is the top-level command-line interface for swlog.
type CLI struct {
	Config  string           `help:"Load logger configuration from a YAML file."                  optional:"" short:"c" type:"existingfile"`
	Level   logLevel         `default:""                                                          enum:",debug,info,warn,warning,error" help:"Minimum severity to emit." placeholder:"LEVEL"`
	Path    string           `help:"Default log file path (empty disables the file sink)."        optional:"" type:"path"`
	Color   *bool            `help:"Colorize console output."`
	Version kong.VersionFlag `help:"Print version and exit."`

	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Emit cmd.Emit `cmd:"" default:"withargs" help:"Append a message to the log"`
	View cmd.View `cmd:""                    help:"Browse a log file interactively"`
}

// configure applies the configuration file and command-line flags to the
// process-wide default logger. Flags override file settings.
func (c *CLI) configure() error {
	var opts []logger.Option

	if c.Config != "" {
		fileOpts, err := logger.LoadFile(c.Config)
		if err != nil {
			return err
		}

		opts = append(opts, fileOpts...)
	}

	if c.Level != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(string(c.Level))))
	}

	if c.Path != "" {
		opts = append(opts, logger.WithPath(c.Path))
	}

	if c.Color != nil {
		opts = append(opts, logger.WithColor(*c.Color))
	}

	logger.Config(opts...)

	return nil
}

// Run executes the swlog CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	vars := kong.Vars{
		"version": pkg.Version(),
	}.CloneWith(cli.Pprof.vars())

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	err = cli.configure()
	if err != nil {
		return err
	}

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
