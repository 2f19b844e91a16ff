package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// taskResult is the output of commands that produce a task
type taskResult struct {
	Task     models.Task `json:"task"`
	ColumnID string      `json:"column_id"`
	verb     string
}

// GetID returns the task ID for --quiet output
func (r taskResult) GetID() string {
	return r.Task.ID
}

// RenderHuman prints a one-line confirmation
func (r taskResult) RenderHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s task %s %q in %s\n", r.verb, r.Task.ID, r.Task.Title, r.ColumnID)
	return err
}

// addOutputFlags registers the agent-friendly output flags
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}
