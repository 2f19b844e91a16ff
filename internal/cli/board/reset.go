package board

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli/handler"
	"github.com/thenoetrevino/taskboard/internal/models"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the board with the default board",
		Long: `Replace the whole board, including a corrupt board file, with the
default three-column board. All current tasks are lost.`,
		Args: handler.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runReset), func(cmd *cobra.Command) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return errors.New("refusing to overwrite the board without --yes")
			}
			return nil
		}),
	}

	cmd.Flags().Bool("yes", false, "Confirm overwriting the board")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

type resetResult struct {
	Columns int `json:"columns"`
	Tasks   int `json:"tasks"`
}

func (r resetResult) RenderHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Board reset: %d columns, %d tasks\n", r.Columns, r.Tasks)
	return err
}

func runReset(ctx context.Context, args *handler.Arguments) (any, error) {
	data := models.DefaultBoard()
	if err := args.CLI.App.BoardService.ReplaceBoard(ctx, data); err != nil {
		return nil, err
	}
	return resetResult{Columns: len(data.Columns), Tasks: data.TaskCount()}, nil
}
