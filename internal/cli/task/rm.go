package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli/handler"
)

// RemoveCmd returns the task rm subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Remove a task from the board",
		Args:    handler.ExactArgs(1, "task ID"),
		RunE: handler.Command(handler.HandlerFunc(runRemove), func(cmd *cobra.Command) error {
			return handler.NewFlagParser(cmd).ExclusiveOutput()
		}),
	}

	addOutputFlags(cmd)
	return cmd
}

type removeResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (r removeResult) GetID() string {
	return r.ID
}

func (r removeResult) RenderHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Removed task %s\n", r.ID)
	return err
}

func runRemove(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID := args.Arg(0)
	if err := args.CLI.App.BoardService.DeleteTask(ctx, taskID); err != nil {
		return nil, err
	}
	return removeResult{ID: taskID, Deleted: true}, nil
}
