package tutorial

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli/handler"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a quick guide to the board view and commands",
		Args:  handler.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return outputTutorial(cmd.OutOrStdout(), raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source")
	return cmd
}

func outputTutorial(w io.Writer, raw bool) error {
	if raw {
		_, err := fmt.Fprint(w, tutorialContent)
		return err
	}

	rendered, err := glamour.Render(tutorialContent, "auto")
	if err != nil {
		// Unstyled markdown is still readable
		rendered = tutorialContent
	}
	_, err = fmt.Fprint(w, rendered)
	return err
}
