// Package commands implements the comfort CLI.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tplib/comfort/cli/internal/config"
	"github.com/tplib/comfort/cli/internal/ui"
	"github.com/tplib/comfort/cli/internal/version"
	"github.com/tplib/comfort/internal/debug"
	"github.com/tplib/comfort/runtime/client"
)

// app is the state shared by all commands of one invocation.
type app struct {
	configFile string
	trace      bool
	cfg        *config.Config
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "comfort",
		Short: "Build, apply and query SQLite, MySQL and PostgreSQL schemas",
		Long: `comfort applies schema definition files to a database and runs
ad-hoc statements against it.

Settings are read from .comfort.yaml (in the working directory, $HOME or
$HOME/.config/comfort), .env and .env.local files, COMFORT_* environment
variables and flags, in increasing order of precedence.`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ui.Out = cmd.OutOrStdout()
			ui.Err = cmd.ErrOrStderr()

			cfg, err := config.Load(config.Options{ConfigFile: a.configFile, Flags: cmd.Flags()})
			if err != nil {
				return err
			}
			a.cfg = cfg
			debug.Init(cfg.Debug)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default .comfort.yaml)")
	flags.String("provider", "", "database provider: sqlite, mysql or postgres")
	flags.String("db", "", "database file or DSN")
	flags.String("schema", "", "schema definition file (default comfort.schema)")
	flags.Duration("timeout", 0, "connect timeout")
	flags.Bool("debug", false, "write debug logs to stderr")
	flags.BoolVar(&a.trace, "trace", false, "log every statement with its duration")

	root.AddCommand(
		newSchemaCommand(a),
		newExecCommand(a),
		newQueryCommand(a),
		newDropCommand(a),
		newDoctorCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute is the main entry point for the CLI
func Execute(ctx context.Context) error {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		ui.PrintError("%v", err)
		return err
	}
	return nil
}

// open connects to the configured database.
func (a *app) open(ctx context.Context) (*client.Client, error) {
	cc, err := a.cfg.ClientConfig()
	if err != nil {
		return nil, err
	}
	c, err := client.Open(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database %q: %w", cc.Provider, cc.DSN, err)
	}
	if a.trace {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: ui.Err, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
		c.Use(client.LoggingMiddleware(logger))
	}
	return c, nil
}
