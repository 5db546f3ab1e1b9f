package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tplib/comfort/cli/internal/compat"
	"github.com/tplib/comfort/cli/internal/ui"
)

func newDoctorCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the database connection and engine version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			engine, err := c.EngineVersion(ctx)
			if err != nil {
				return fmt.Errorf("failed to read engine version: %w", err)
			}
			res, err := compat.Check(c.Provider(), engine)
			if err != nil {
				return err
			}

			status := "OK"
			if !res.OK() {
				status = "TOO OLD"
			}
			if err := ui.PrintTable([]string{"Provider", "Database", "Engine", "Minimum", "Status"}, [][]string{
				{string(res.Provider), a.cfg.Database, res.Engine.String(), res.Minimum.String(), status},
			}); err != nil {
				return err
			}

			if !res.OK() {
				return fmt.Errorf("%s %s is older than the supported minimum %s", res.Provider, res.Engine, res.Minimum)
			}
			ui.PrintSuccess("database is ready")
			return nil
		},
	}
}
