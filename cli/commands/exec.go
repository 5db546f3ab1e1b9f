package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tplib/comfort/cli/internal/ui"
	"github.com/tplib/comfort/runtime/client"
)

func newExecCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <sql> [args...]",
		Short: "Run a statement that returns no rows",
		Long: `Run a statement that returns no rows. Extra arguments bind the
statement's ? placeholders from left to right.`,
		Example: `  comfort exec "DELETE FROM users WHERE id = ?" 7`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			n, err := c.Exec(ctx, args[0], bindArgs(args[1:])...)
			if err != nil {
				return err
			}
			ui.PrintSuccess("%d rows affected", n)
			return nil
		},
	}
}

func newQueryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "query <sql> [args...]",
		Short:   "Run a query and print its rows as a table",
		Example: `  comfort query "SELECT id, name FROM users WHERE age > ?" 18`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			var took string
			c.Use(client.TimingMiddleware(func(e *client.StatementEvent) {
				took = e.Duration.String()
			}))

			cur, err := c.Rows(ctx, args[0], bindArgs(args[1:])...)
			if err != nil {
				return err
			}
			defer cur.Close()

			var rows [][]string
			for cur.Next() {
				row := make([]string, len(cur.Columns()))
				for i := range row {
					if cur.IsNull(i) {
						row[i] = ui.NullText
						continue
					}
					row[i] = cur.String(i)
				}
				rows = append(rows, row)
			}
			if err := cur.Err(); err != nil {
				return fmt.Errorf("failed to read rows: %w", err)
			}

			if err := ui.PrintTable(cur.Columns(), rows); err != nil {
				return err
			}
			ui.PrintInfo("%d rows (%s)", len(rows), took)
			return nil
		},
	}
}

func bindArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
