package commands

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/tplib/comfort/cli/internal/ui"
)

// confirm asks a yes/no question on the terminal.
var confirm = func(message string) (bool, error) {
	ok := false
	err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &ok)
	return ok, err
}

func newDropCommand(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "drop <table>...",
		Short: "Drop tables if they exist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(fmt.Sprintf("Drop %s from %s?", strings.Join(args, ", "), a.cfg.Database))
				if err != nil {
					return err
				}
				if !ok {
					ui.PrintWarning("nothing dropped")
					return nil
				}
			}

			ctx := cmd.Context()
			c, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.DropTable(ctx, args...); err != nil {
				return err
			}
			ui.PrintSuccess("dropped %s", strings.Join(args, ", "))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
