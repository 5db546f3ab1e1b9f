package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tplib/comfort/cli/internal/config"
	"github.com/tplib/comfort/cli/internal/ui"
	"github.com/tplib/comfort/cli/internal/watch"
	"github.com/tplib/comfort/schema"
	"github.com/tplib/comfort/schema/dsl"
)

func newSchemaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Work with schema definition files",
	}
	cmd.AddCommand(
		newSchemaPrintCommand(a),
		newSchemaApplyCommand(a),
		newSchemaWatchCommand(a),
	)
	return cmd
}

func newSchemaPrintCommand(a *app) *cobra.Command {
	var markdown bool
	cmd := &cobra.Command{
		Use:   "print [schema-path]",
		Short: "Print the CREATE statements of a schema file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.schemaPath(args)
			tables, err := readSchema(path)
			if err != nil {
				return err
			}

			statements := createStatements(tables)
			if markdown {
				return ui.PrintMarkdown(ui.SQLMarkdown(path, statements))
			}
			ui.PrintStatements(statements)
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render as markdown")
	return cmd
}

func newSchemaApplyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply [schema-path]",
		Short: "Create the tables of a schema file",
		Long: `Create every table of a schema file that does not exist yet.
Existing tables are left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.apply(cmd.Context(), a.schemaPath(args))
		},
	}
}

func newSchemaWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [schema-path]",
		Short: "Apply a schema file now and again whenever it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.schemaPath(args)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			w, err := watch.New(path,
				func() error { return a.apply(ctx, path) },
				watch.WithErrorHandler(func(err error) { ui.PrintError("%v", err) }),
			)
			if err != nil {
				return err
			}
			ui.PrintInfo("watching %s, press Ctrl+C to stop", path)
			return w.Run(ctx)
		},
	}
}

func (a *app) schemaPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.Schema
}

func (a *app) apply(ctx context.Context, path string) error {
	tables, err := readSchema(path)
	if err != nil {
		return err
	}

	c, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.CreateTable(ctx, tables...); err != nil {
		return err
	}
	ui.PrintSuccess("applied %d tables from %s", len(tables), path)
	return nil
}

func readSchema(path string) ([]*schema.Table, error) {
	f, err := config.AppFs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schema file not found: %w", err)
	}
	defer f.Close()
	return dsl.Parse(path, f)
}

func createStatements(tables []*schema.Table) []string {
	statements := make([]string, len(tables))
	for i, t := range tables {
		statements[i] = t.CreateStatement()
	}
	return statements
}
