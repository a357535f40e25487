// Package cli wires the pathplan command tree.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mistakeknot/pathplan/internal/config"
	"github.com/mistakeknot/pathplan/internal/roadmap"
	"github.com/mistakeknot/pathplan/internal/tui"
)

// Version is stamped at build time.
var Version = "dev"

func Execute() error {
	return NewRoot().Execute()
}

var runTUI = func(cfg config.Config) error {
	m := tui.New(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathplan",
		Short: "AI-assisted product roadmap workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}
	root.AddCommand(
		versionCmd(),
		quarterCmd(),
		configCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pathplan version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "pathplan", Version)
		},
	}
}

// quarterCmd resolves a quarter label to its date range, handy for
// checking what the scheduler will do with a prompt like "Q3 2025".
func quarterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quarter <label>",
		Short: "Show the date range of a quarter label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, ok := roadmap.QuarterRange(args[0])
			if !ok {
				return fmt.Errorf("no quarter found in %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s to %s\n",
				roadmap.QuarterLabel(start),
				start.Format(roadmap.DateLayout),
				end.Format(roadmap.DateLayout))
			return nil
		},
	}
}

// configCmd prints the default configuration for the user to save.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigToml)
		},
	}
}

// Main is the process entry point shared with cmd/pathplan.
func Main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
