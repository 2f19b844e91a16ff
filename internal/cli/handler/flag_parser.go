// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseString extracts a required, non-blank string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("--%s is required", flagName)
	}
	return value, nil
}

// RequireOneOf fails unless at least one of the flags was set
func (p *FlagParser) RequireOneOf(flagNames ...string) error {
	for _, name := range flagNames {
		if p.cmd.Flags().Changed(name) {
			return nil
		}
	}
	return fmt.Errorf("at least one of --%s is required", strings.Join(flagNames, ", --"))
}

// ExclusiveOutput fails when both --json and --quiet are set
func (p *FlagParser) ExclusiveOutput() error {
	jsonOutput, _ := p.cmd.Flags().GetBool("json")
	quietMode, _ := p.cmd.Flags().GetBool("quiet")
	if jsonOutput && quietMode {
		return fmt.Errorf("--json and --quiet cannot be used together")
	}
	return nil
}

// ExactArgs is cobra.ExactArgs with a usage exit code; what names the arguments
func ExactArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return cli.UsageError(fmt.Errorf("expected %d argument(s) (%s), got %d", n, what, len(args)))
		}
		return nil
	}
}

// NoArgs is cobra.NoArgs with a usage exit code
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return cli.UsageError(fmt.Errorf("unexpected argument %q for %q", args[0], cmd.CommandPath()))
	}
	return nil
}
