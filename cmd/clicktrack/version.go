package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version can be overridden at build time via -ldflags.
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyColor(cmd, stdoutFile(cmd)); err != nil {
			return err
		}
		name := color.New(color.FgCyan, color.Bold).Sprint("clicktrack")
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, color.New(color.FgGreen).Sprint(version))
		return nil
	},
}
