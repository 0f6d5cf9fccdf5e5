// Package main provides the clicktrack CLI.
//
// Usage:
//
//	clicktrack replay [scenario.toml...]   Replay pointer scripts and print click telemetry
//	clicktrack watch scenario.toml         Click on a scenario window in the terminal
//	clicktrack version                     Print version information
//
// Examples:
//
//	clicktrack replay examples/scenarios/*.toml
//	clicktrack replay --mode ring --color off examples/scenarios/reference.toml
//	clicktrack watch examples/scenarios/toolbar.toml
//	CLICKTRACK_DEBUG=/tmp/clicktrack.log clicktrack watch examples/scenarios/toolbar.toml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/clicktrack/internal/debug"
	"github.com/grindlemire/clicktrack/pkg/config"
	"github.com/grindlemire/clicktrack/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:           "clicktrack",
	Short:         "Click telemetry for UI node trees",
	Long:          `clicktrack resolves pointer releases to the clickable element under them and records screen and widget click telemetry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "config file (default ./clicktrack.toml when present)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	err := rootCmd.Execute()
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env is the configuration and logger shared by every subcommand.
type env struct {
	cfg config.Config
	log *slog.Logger
}

// setup loads configuration, opens the debug log and builds the logger.
func setup(cmd *cobra.Command, logOut io.Writer) (env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return env{}, err
	}
	if err := debug.InitFromEnv(); err != nil {
		return env{}, err
	}
	log, err := logging.FromConfig(cfg.Logging, debug.Tee(logOut))
	if err != nil {
		return env{}, err
	}
	log.Debug("configuration loaded", "source", cfg.Source)
	return env{cfg: cfg, log: log}, nil
}

// applyColor sets fatih/color's global switch from the --color flag.
func applyColor(cmd *cobra.Command, f *os.File) error {
	flag, _ := cmd.Flags().GetString("color")
	switch flag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(f)
	default:
		return fmt.Errorf("--color must be auto|on|off, got %q", flag)
	}
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// stdoutFile returns the command's output as a file, or nil when it was
// redirected to something else.
func stdoutFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.OutOrStdout().(*os.File)
	return f
}

// terminalWidth returns the width of f, or 0 when it is not a terminal.
func terminalWidth(f *os.File) int {
	if !isTerminal(f) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
