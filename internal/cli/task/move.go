package task

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli/handler"
	"github.com/thenoetrevino/taskboard/internal/services/board"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Move a task to a column",
		Long: `Move a task to a column, at the bottom unless --index is given.
Index 0 is the top of the column; an index past the end appends.

Examples:
  taskboard task move task-1 --column done
  taskboard task move task-4 --column todo --index 0
`,
		Args: handler.ExactArgs(1, "task ID"),
		RunE: handler.Command(handler.HandlerFunc(runMove), func(cmd *cobra.Command) error {
			p := handler.NewFlagParser(cmd)
			if _, err := p.ParseString("column"); err != nil {
				return err
			}
			return p.ExclusiveOutput()
		}),
	}

	cmd.Flags().String("column", "", "Target column ID (required)")
	cmd.Flags().Int("index", -1, "Position in the target column (default: bottom)")
	addOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, args *handler.Arguments) (any, error) {
	req := board.MoveTaskRequest{
		TaskID:   args.Arg(0),
		ColumnID: strings.TrimSpace(args.GetString("column", "")),
		Index:    args.GetInt("index", -1),
	}

	svc := args.CLI.App.BoardService
	if err := svc.MoveTask(ctx, req); err != nil {
		return nil, err
	}

	task, columnID, err := svc.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}
	return taskResult{Task: *task, ColumnID: columnID, verb: "Moved"}, nil
}
