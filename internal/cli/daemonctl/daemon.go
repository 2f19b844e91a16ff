// Package daemonctl holds the commands that run and inspect the daemon
package daemonctl

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/cli/handler"
	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/daemon"
	"github.com/thenoetrevino/taskboard/internal/launcher"
)

// DaemonCmd returns the daemon command. Without a subcommand it runs the
// daemon in the foreground.
func DaemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the board daemon in the foreground",
		Long: `Serve the board file over a unix socket so that every taskboard
process reads and writes it through one owner.

Other taskboard commands use the daemon automatically while it is running.`,
		Args: handler.NoArgs,
		RunE: runDaemon,
	}

	cmd.AddCommand(StatusCmd())
	return cmd
}

func runDaemon(cmd *cobra.Command, args []string) error {
	formatter := cli.NewOutputFormatter(cmd)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return formatter.Fail(err)
	}

	if err := launcher.LaunchDaemon(ctx, cfg); err != nil {
		return formatter.Fail(err)
	}
	return nil
}

// StatusCmd returns the daemon status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon metrics",
		Args:  handler.NoArgs,
		RunE:  runStatus,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

type statusResult struct {
	SocketPath string `json:"socket_path"`
	daemon.MetricsSnapshot
}

func (r statusResult) RenderHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Daemon on %s\n  uptime:   %s\n  clients:  %d\n  requests: %d (%d failed)\n  loads:    %d\n  saves:    %d\n",
		r.SocketPath, r.Uptime, r.ConnectedClients, r.RequestsTotal, r.RequestErrors, r.Loads, r.Saves)
	return err
}

func runStatus(cmd *cobra.Command, args []string) error {
	formatter := cli.NewOutputFormatter(cmd)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return formatter.Fail(err)
	}
	socketPath, err := cfg.SocketPath()
	if err != nil {
		return formatter.Fail(err)
	}

	client, err := daemon.Dial(ctx, socketPath)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = client.Close() }()

	snap, err := client.Status(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(statusResult{SocketPath: socketPath, MetricsSnapshot: snap})
}
