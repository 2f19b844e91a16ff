package board

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli/handler"
	"github.com/thenoetrevino/taskboard/internal/cli/styles"
	"github.com/thenoetrevino/taskboard/internal/models"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board",
		Args:  handler.NoArgs,
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

// boardView renders the board as side-by-side columns
type boardView struct {
	*models.KanbanData
}

// MarshalJSON keeps the board's own encoding
func (v boardView) MarshalJSON() ([]byte, error) {
	return v.KanbanData.MarshalJSON()
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	data, err := args.CLI.App.BoardService.GetBoard(ctx)
	if err != nil {
		return nil, err
	}
	return boardView{data}, nil
}

// RenderHuman prints every column with its tasks
func (v boardView) RenderHuman(w io.Writer) error {
	if len(v.Columns) == 0 {
		_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("The board has no columns"))
		return err
	}

	rendered := make([]string, 0, len(v.Columns))
	for _, col := range v.Columns {
		rendered = append(rendered, styles.RenderColumn(renderColumn(col)))
	}

	_, err := fmt.Fprintln(w, styles.JoinColumns(rendered...))
	return err
}

func renderColumn(col models.Column) string {
	var b strings.Builder

	b.WriteString(styles.ColumnHeaderStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks))))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(col.ID))

	if len(col.Tasks) == 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.SubtitleStyle.Render("empty"))
		return b.String()
	}

	for _, task := range col.Tasks {
		b.WriteString("\n\n")
		b.WriteString(styles.TitleStyle.Render(task.Title))
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(task.ID))
	}
	return b.String()
}
