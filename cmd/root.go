// Package cmd assembles the taskboard command tree
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/cli/board"
	"github.com/thenoetrevino/taskboard/internal/cli/daemonctl"
	"github.com/thenoetrevino/taskboard/internal/cli/setup"
	"github.com/thenoetrevino/taskboard/internal/cli/task"
	"github.com/thenoetrevino/taskboard/internal/cli/tutorial"
	"github.com/thenoetrevino/taskboard/internal/launcher"
)

// NewRootCmd builds the taskboard command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskboard",
		Short: "Taskboard - a kanban board kept in one JSON file",
		Long: `Taskboard keeps a kanban board in ~/tasks.json.

Run without arguments to open the board view, or use the subcommands to
read and change the board from scripts.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return launcher.Launch(ctx)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(daemonctl.DaemonCmd())
	rootCmd.AddCommand(setup.SetupCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs the command line and returns the error of the failed command
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}
