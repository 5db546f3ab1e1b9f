package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tplib/comfort/cli/internal/ui"
	"github.com/tplib/comfort/cli/internal/version"
)

func newVersionCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if !verbose {
				fmt.Fprintln(ui.Out, info.String())
				return nil
			}
			return ui.PrintTable([]string{"Field", "Value"}, info.Rows())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print build details")
	return cmd
}
