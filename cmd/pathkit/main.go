// Package main provides the CLI entry point for pathkit.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/pathkit/pkg/adapters/logger"
	"github.com/user/pathkit/pkg/config"
	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/platform"
	"github.com/user/pathkit/pkg/ports"
)

var version = "dev"

// environment supplies the process level dependencies of the app.
type environment struct {
	out      io.Writer
	errOut   io.Writer
	logger   func(level ports.LogLevel) ports.Logger
	platform func(log ports.Logger) *platform.Platform
}

// state is resolved once per run in the app's Before hook.
type state struct {
	cfg      config.Config
	log      ports.Logger
	platform *platform.Platform
}

func nativeEnvironment() environment {
	return environment{
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: func(level ports.LogLevel) ports.Logger {
			if level == ports.LevelQuiet {
				return logger.NewNoop()
			}
			return logger.NewConsole(level)
		},
		platform: platform.Native,
	}
}

func newApp(env environment) *cli.App {
	st := &state{}

	app := &cli.App{
		Name:      "pathkit",
		Usage:     l10n.T("Inspect and manipulate normalized paths"),
		Version:   version,
		Writer:    env.out,
		ErrWriter: env.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				EnvVars:  []string{config.EnvFile},
				Usage:    l10n.T("YAML configuration file"),
				Category: l10n.T("Configuration"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "native-input",
				Usage:    l10n.T("Treat arguments as native paths"),
				Category: l10n.T("Paths"),
			},
			&cli.BoolFlag{
				Name:     "native-output",
				Usage:    l10n.T("Print paths with the native separator"),
				Category: l10n.T("Paths"),
			},
		},
		Before: func(c *cli.Context) error {
			return st.load(c, env)
		},
		Commands: []*cli.Command{
			normalizeCommand(st),
			joinCommand(st),
			relativeCommand(st),
			parentCommand(st),
			infoCommand(st),
			findCommand(st),
			lsCommand(st),
			runCommand(st),
			lookupCommand(st),
			semverCommand(st),
		},
	}
	return app
}

// load resolves configuration, then builds the logger and platform from it.
func (st *state) load(c *cli.Context, env environment) error {
	cfg := config.Defaults()
	if file := c.String("config"); file != "" {
		fs, err := env.platform(logger.NewNoop()).FileSystem()
		if err != nil {
			return err
		}
		cfg, err = config.LoadFromFile(fs, path.FromNative(file))
		if err != nil {
			return fmt.Errorf("%s: %w", l10n.F("Failed to load config %s", file), err)
		}
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("quiet") {
		cfg.LogLevel = ports.LevelQuiet.String()
	}
	if c.IsSet("native-input") {
		cfg.NativeInput = c.Bool("native-input")
	}
	if c.IsSet("native-output") {
		cfg.NativeOutput = c.Bool("native-output")
	}

	st.cfg = cfg
	st.log = env.logger(cfg.Level())
	st.platform = env.platform(st.log)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(nativeEnvironment()).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
