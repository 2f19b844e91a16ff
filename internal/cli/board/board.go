// Package board holds the commands that read or replace the whole board
package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show, export or replace the board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(PathCmd())
	cmd.AddCommand(ResetCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())

	return cmd
}
