package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli/handler"
	"github.com/thenoetrevino/taskboard/internal/services/board"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a column",
		Long: `Add a new task at the bottom of a column.

Examples:
  # Simple task (human-readable output)
  taskboard task add --column todo --title "Fix bug"

  # JSON output for agents
  taskboard task add --column todo --title "Fix bug" --json

  # Quiet mode for bash capture
  TASK_ID=$(taskboard task add --column todo --title "Fix bug" --quiet)

  # Description from stdin
  git log -1 --format=%B | taskboard task add --column todo --title "Follow up" --description -
`,
		Args: handler.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runAdd), func(cmd *cobra.Command) error {
			p := handler.NewFlagParser(cmd)
			if _, err := p.ParseString("column"); err != nil {
				return err
			}
			if _, err := p.ParseString("title"); err != nil {
				return err
			}
			return p.ExclusiveOutput()
		}),
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID (required)")
	cmd.Flags().String("title", "", "Task title (required)")

	// Optional flags
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(ctx context.Context, args *handler.Arguments) (any, error) {
	columnID := strings.TrimSpace(args.GetString("column", ""))

	description, err := readDescription(args.GetCmd(), args.GetString("description", ""))
	if err != nil {
		return nil, err
	}

	task, err := args.CLI.App.BoardService.CreateTask(ctx, board.CreateTaskRequest{
		ColumnID:    columnID,
		Title:       args.GetString("title", ""),
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	return taskResult{Task: *task, ColumnID: columnID, verb: "Added"}, nil
}

// readDescription resolves "-" to the command's stdin
func readDescription(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
