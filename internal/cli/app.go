// Package cli contains the root command-line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/hymnist/hymnist/internal/args"
	"github.com/hymnist/hymnist/internal/config"
	"github.com/hymnist/hymnist/internal/covers"
	"github.com/hymnist/hymnist/internal/env"
	"github.com/hymnist/hymnist/internal/logger"
	"github.com/hymnist/hymnist/internal/version"
)

const description = "Tool to execute tasks for processing a local music collection."

// Destination names of the root arguments.
const (
	destPaths   = "paths"
	destDebug   = "debug"
	destVerbose = "verbose"
	destConfig  = "config"
)

// App is the root command-line tool. It declares the top-level arguments and owns the feature modules, which
// register their own arguments into the same parser.
type App struct {
	provider *args.Provider
	covers   covers.Module

	stdout, stderr io.Writer
	colors         bool
}

// AppOption is a function that can be used to modify an App.
type AppOption func(*App)

// WithOutput sets the writers for the regular output and the errors (os.Stdout and os.Stderr by default).
func WithOutput(stdout, stderr io.Writer) AppOption {
	return func(a *App) { a.stdout, a.stderr = stdout, stderr }
}

// WithColors sets whether the output is colored, unless the environment says otherwise.
func WithColors(on bool) AppOption { return func(a *App) { a.colors = on } }

// NewApp creates the application and registers all the arguments. Nothing is parsed yet.
func NewApp(name string, opts ...AppOption) (*App, error) {
	var app = &App{stdout: os.Stdout, stderr: os.Stderr}

	for _, opt := range opts {
		opt(app)
	}

	app.provider = args.NewProvider(name,
		args.WithDescription(description),
		args.WithFormatter(args.DefaultsFormatter),
		args.WithOutput(app.stdout, app.stderr),
	)

	if err := args.Register(app.provider, app, app.covers); err != nil {
		return nil, err
	}

	return app, nil
}

var _ args.Module = (*App)(nil)

// Arguments returns the top-level arguments.
func (a *App) Arguments() ([]args.Argument, error) {
	return []args.Argument{
		{
			Flags: []string{destPaths},
			Nargs: args.OneOrMore,
			Help:  "Target paths to process.",
		},
		{
			Flags:  []string{"--debug"},
			Action: args.StoreTrue,
			Help:   "Enable debug output.",
		},
		{
			Flags:  []string{"-v", "--verbose"},
			Action: args.StoreTrue,
			Help:   "Enable verbose output.",
		},
		{
			Flags:   []string{"-c", "--config"},
			Metavar: "FILE",
			Help:    fmt.Sprintf("Path to the configuration file [$%s].", env.ConfigFile),
		},
		{
			Flags:   []string{"--version"},
			Action:  args.Version,
			Version: a.provider.Name() + " " + version.Version(),
			Help:    "Show the version number and exit.",
		},
	}, nil
}

// Provider returns the arguments provider.
func (a *App) Provider() *args.Provider { return a.provider }

// Parse parses the command line. It can be called only once.
func (a *App) Parse(ctx context.Context, argv []string) (*args.Namespace, error) {
	return a.provider.Parse(ctx, argv)
}

// Run parses the command line and executes the application.
func (a *App) Run(ctx context.Context, argv []string) error {
	ns, err := a.Parse(ctx, argv)
	if err != nil {
		return err
	}

	return a.Execute(ctx, ns)
}

// Execute runs the cover-art conditioning with the parsed values.
func (a *App) Execute(ctx context.Context, ns *args.Namespace) error {
	a.setupColors()

	log, err := a.newLogger(ns)
	if err != nil {
		return err
	}

	defer func() {
		// error ignoring reasons:
		// - <https://github.com/uber-go/zap/issues/772>
		// - <https://github.com/uber-go/zap/issues/328>
		_ = log.Sync()
	}()

	cfg, err := a.loadConfig(ns, log)
	if err != nil {
		return err
	}

	opts, err := covers.OptionsFrom(ns, cfg.Covers)
	if err != nil {
		return err
	}

	var paths = ns.Strings(destPaths)

	log.Debug("Running",
		zap.Strings("paths", paths),
		zap.Bool("missing", opts.Missing),
		zap.Ints("dimension limits", opts.DimensionLimits),
		zap.Int("default dimension", opts.DefaultDimension),
		zap.Int("dpi", opts.DPI),
	)

	report, runErr := covers.NewConditioner(log, opts).Run(ctx, paths)

	out, err := report.Render()
	if err != nil {
		return err
	}

	if _, err = io.WriteString(a.stdout, out); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}

	if failed := report.Count(covers.ActionFailed); failed > 0 {
		return errors.Errorf("%d album(s) failed", failed)
	}

	return nil
}

// ExitCode reports the error and returns the process exit code. Parser errors follow the parser conventions
// (0 after the help or the version output, 2 for usage errors); other errors are written as "error: <msg>" and
// give 1.
func (a *App) ExitCode(err error) int {
	var code = a.provider.ExitCode(err)

	if code == 1 {
		_, _ = fmt.Fprintln(a.stderr, "error: "+err.Error())
	}

	return code
}

func (a *App) setupColors() {
	var on = a.colors

	if _, exists := env.ForceColors.Lookup(); exists {
		on = true
	} else if _, exists = env.NoColors.Lookup(); exists {
		on = false
	} else if v, ok := env.Term.Lookup(); ok && v == "dumb" {
		on = false
	}

	if on {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
}

func (a *App) newLogger(ns *args.Namespace) (*zap.Logger, error) {
	var (
		lvl    = logger.InfoLevel
		format = logger.ConsoleFormat
		err    error
	)

	if v, ok := env.LogLevel.Lookup(); ok {
		if lvl, err = logger.ParseLevel([]byte(v)); err != nil {
			return nil, err
		}
	}

	if ns.Bool(destVerbose) || ns.Bool(destDebug) {
		lvl = logger.DebugLevel
	}

	if v, ok := env.LogFormat.Lookup(); ok {
		if format, err = logger.ParseFormat([]byte(v)); err != nil {
			return nil, err
		}
	}

	return logger.New(lvl, format, logger.WithOutput(a.stderr), logger.WithDebug(ns.Bool(destDebug)))
}

func (a *App) loadConfig(ns *args.Namespace, log *zap.Logger) (config.Config, error) {
	var (
		cfg      config.Config
		explicit = ns.String(destConfig)
	)

	if explicit == "" {
		explicit, _ = env.ConfigFile.Lookup()
	}

	var path = config.Lookup(explicit)
	if path == "" {
		return cfg, nil
	}

	log.Debug("Loading the configuration file", zap.String("path", path))

	if err := cfg.FromFile(path); err != nil {
		return cfg, errors.Wrap(err, "failed to load the configuration")
	}

	return cfg, nil
}
