package testutil

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/app"
	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/store"
)

// SetupCLITest builds an App over ds and returns a context that CLI
// commands will pick it up from
func SetupCLITest(t *testing.T, ds store.DataStore) context.Context {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), store.FileName)
	cfg.Daemon.Disabled = true

	testApp, err := app.New(context.Background(), cfg, app.WithDataStore(ds))
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() {
		_ = testApp.Close()
	})

	return cli.WithApp(context.Background(), testApp)
}

// ExecuteCLICommand runs cmd under ctx and returns its stdout and stderr
func ExecuteCLICommand(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	SetupCobraCommand(cmd, args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(&bytes.Buffer{})

	err = cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin set to input
func ExecuteCLICommandWithInput(t *testing.T, ctx context.Context, cmd *cobra.Command, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	SetupCobraCommand(cmd, args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(bytes.NewBufferString(input))

	err = cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}
