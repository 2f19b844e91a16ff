package board

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/cli/handler"
	"github.com/thenoetrevino/taskboard/internal/store"
)

// ImportCmd returns the board import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the board with the contents of FILE",
		Long: `Validate FILE as a board and save it in place of the current board.
Use - to read from stdin. Nothing is written when FILE is not a valid board.

Example:
  taskboard board import backup.json
`,
		Args: handler.ExactArgs(1, "file"),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runImport)),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

type importResult struct {
	Source  string `json:"source"`
	Columns int    `json:"columns"`
	Tasks   int    `json:"tasks"`
}

func (r importResult) RenderHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Imported %d columns and %d tasks from %s\n", r.Columns, r.Tasks, r.Source)
	return err
}

func runImport(ctx context.Context, args *handler.Arguments) (any, error) {
	source := args.Arg(0)

	var raw []byte
	var err error
	if source == "-" {
		raw, err = io.ReadAll(args.GetCmd().InOrStdin())
	} else {
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("read import file %s: %w", source, err)
	}

	data, err := store.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, cli.ErrInvalidImport, err)
	}

	if err := args.CLI.App.BoardService.ReplaceBoard(ctx, data); err != nil {
		return nil, err
	}
	return importResult{Source: source, Columns: len(data.Columns), Tasks: data.TaskCount()}, nil
}
