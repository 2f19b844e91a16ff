package board

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/app"
	"github.com/thenoetrevino/taskboard/internal/cli/handler"
)

// PathCmd returns the board path subcommand
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print where the board is stored",
		Args:  handler.NoArgs,
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runPath)),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

type pathResult struct {
	Path string   `json:"path"`
	Mode app.Mode `json:"mode"`
}

func (r pathResult) RenderHuman(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Path)
	return err
}

func runPath(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App
	return pathResult{Path: a.BoardPath(), Mode: a.Mode()}, nil
}
