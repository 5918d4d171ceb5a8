package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read [dir]",
		Short: "Print the lockfile of a project in the canonical schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Read(cmd.Context(), dirArg(args), readOptions(cmd), cmd.OutOrStdout())
		},
	}
	addReadFlags(cmd)
	return cmd
}
