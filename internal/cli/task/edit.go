package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli/handler"
	"github.com/thenoetrevino/taskboard/internal/services/board"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a task's title or description",
		Long: `Change the title and/or description of a task. Flags that are not
given keep their current value; --description "" clears the description.

Examples:
  taskboard task edit task-1 --title "Learn Go"
  taskboard task edit task-1 --description -  < notes.md
`,
		Args: handler.ExactArgs(1, "task ID"),
		RunE: handler.Command(handler.HandlerFunc(runEdit), func(cmd *cobra.Command) error {
			p := handler.NewFlagParser(cmd)
			if err := p.RequireOneOf("title", "description"); err != nil {
				return err
			}
			return p.ExclusiveOutput()
		}),
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	addOutputFlags(cmd)

	return cmd
}

func runEdit(ctx context.Context, args *handler.Arguments) (any, error) {
	req := board.UpdateTaskRequest{
		TaskID: args.Arg(0),
		Title:  args.GetStringPtr("title"),
	}

	if desc := args.GetStringPtr("description"); desc != nil {
		value, err := readDescription(args.GetCmd(), *desc)
		if err != nil {
			return nil, err
		}
		req.Description = &value
	}

	svc := args.CLI.App.BoardService
	if _, err := svc.UpdateTask(ctx, req); err != nil {
		return nil, err
	}

	task, columnID, err := svc.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}
	return taskResult{Task: *task, ColumnID: columnID, verb: "Updated"}, nil
}
