package board

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli/handler"
	"github.com/thenoetrevino/taskboard/internal/store"
)

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the board in its file format",
		Long: `Print the board as pretty JSON, exactly as it is stored.

Example:
  taskboard board export > backup.json
`,
		Args: handler.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runExport)),
	}
}

// rawOutput is written verbatim
type rawOutput []byte

func (r rawOutput) RenderHuman(w io.Writer) error {
	_, err := w.Write(r)
	return err
}

func runExport(ctx context.Context, args *handler.Arguments) (any, error) {
	data, err := args.CLI.App.BoardService.GetBoard(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := store.Encode(data)
	if err != nil {
		return nil, err
	}
	return rawOutput(raw), nil
}
