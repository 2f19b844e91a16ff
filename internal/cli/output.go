package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// HumanRenderer is implemented by results with a human-readable form
type HumanRenderer interface {
	RenderHuman(w io.Writer) error
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer
	Err io.Writer
}

// NewOutputFormatter reads --json and --quiet from cmd (when defined) and
// writes to the command's output streams
func NewOutputFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.out(), idGetter.GetID())
			return err
		}
		if !f.JSON {
			return nil
		}
	}

	if f.JSON {
		enc := json.NewEncoder(f.out())
		enc.SetEscapeHTML(false)
		return enc.Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	if renderer, ok := data.(HumanRenderer); ok {
		return renderer.RenderHuman(f.out())
	}
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		enc := json.NewEncoder(f.out())
		enc.SetEscapeHTML(false)
		return enc.Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := fmt.Fprintf(f.errOut(), "Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

// Fail reports err with its classification and returns it tagged with the
// matching exit code
func (f *OutputFormatter) Fail(err error) error {
	failure := Classify(err)
	if fmtErr := f.ErrorWithSuggestion(failure.Code, err.Error(), failure.Suggestion); fmtErr != nil {
		return fmtErr
	}
	return &ExitCodeError{Code: failure.ExitCode, Err: err, Reported: true}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case string:
		_, err := fmt.Fprintln(f.out(), v)
		return err
	default:
		_, err := fmt.Fprintf(f.out(), "%+v\n", v)
		return err
	}
}
