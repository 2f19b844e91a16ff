package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli/handler"
	"github.com/thenoetrevino/taskboard/internal/cli/styles"
	"github.com/thenoetrevino/taskboard/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Long:  "Display a task with its column and its description rendered as markdown.",
		Args:  handler.ExactArgs(1, "task ID"),
		RunE: handler.Command(handler.HandlerFunc(runShow), func(cmd *cobra.Command) error {
			return handler.NewFlagParser(cmd).ExclusiveOutput()
		}),
	}

	addOutputFlags(cmd)
	return cmd
}

// showResult renders as a card; JSON output matches the other task commands
type showResult struct {
	taskResult
	columnTitle string
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	data, err := args.CLI.App.BoardService.GetBoard(ctx)
	if err != nil {
		return nil, err
	}

	loc, err := data.Locate(args.Arg(0))
	if err != nil {
		return nil, err
	}
	column := data.Columns[loc.ColumnIndex]

	return showResult{
		taskResult:  taskResult{Task: column.Tasks[loc.TaskIndex], ColumnID: column.ID},
		columnTitle: column.Title,
	}, nil
}

// RenderHuman prints the task as a bordered card
func (r showResult) RenderHuman(w io.Writer) error {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(r.Task.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(r.Task.ID))
	content.WriteString("\n\n")

	content.WriteString(styles.LabelStyle.Render("Column: "))
	content.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%s (%s)", r.columnTitle, r.ColumnID)))
	content.WriteString("\n")

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(renderDescription(r.Task))

	_, err := fmt.Fprintln(w, styles.RenderCard(content.String()))
	return err
}

// renderDescription renders markdown, falling back to the raw text
func renderDescription(task models.Task) string {
	if strings.TrimSpace(task.Description) == "" {
		return styles.SubtitleStyle.Render("No description")
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(styles.CardWidth-8),
	)
	if err != nil {
		return task.Description
	}

	out, err := renderer.Render(task.Description)
	if err != nil {
		return task.Description
	}
	return strings.Trim(out, "\n")
}
