// Package setup writes the files taskboard reads at startup
package setup

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/cli/handler"
	"github.com/thenoetrevino/taskboard/internal/config"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create configuration files",
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	var checkFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write a config file with every default spelled out",
		Long: `Write config.yaml to $XDG_CONFIG_HOME/taskboard or ~/.config/taskboard
with the default storage, daemon, log, key and theme settings.

Examples:
  # Write the defaults
  taskboard setup config

  # Show where the config lives and whether it exists
  taskboard setup config --check

  # Replace an existing file
  taskboard setup config --force
`,
		Args: handler.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewOutputFormatter(cmd)

			configPath, err := config.ConfigPath()
			if err != nil {
				return formatter.Fail(err)
			}

			if checkFlag {
				return CheckConfig(cmd.OutOrStdout(), configPath)
			}

			if err := InstallConfig(cmd.OutOrStdout(), configPath, forceFlag); err != nil {
				return formatter.Fail(err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Report the config path and whether it exists")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return cmd
}

// InstallConfig writes the default configuration to configPath
func InstallConfig(w io.Writer, configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return cli.UsageError(fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath))
	}

	if err := config.Default().SaveFile(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	_, err := fmt.Fprintf(w, "Config written to %s\n", configPath)
	return err
}

// CheckConfig reports whether configPath exists
func CheckConfig(w io.Writer, configPath string) error {
	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		_, err = fmt.Fprintf(w, "Config found: %s\n", configPath)
		return err
	case errors.Is(err, os.ErrNotExist):
		_, err = fmt.Fprintf(w, "No config at %s (defaults in use)\n  Run: taskboard setup config\n", configPath)
		return err
	default:
		return err
	}
}
