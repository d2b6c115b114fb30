// Package cmd implements the annobench command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlaforge/annobench/internal/style"
)

// Command group IDs for help organization.
const (
	GroupSetup     = "setup"
	GroupWorkbench = "workbench"
	GroupReview    = "review"
)

var rootCmd = &cobra.Command{
	Use:   "annobench",
	Short: "Role-based text-annotation workbench",
	Long: `annobench organizes texts into named collections, attaches annotations
to them, and moves annotations through a validate/correct review workflow.

State lives in four ;-delimited files in the workbench data directory and is
byte-compatible with directories produced by the legacy tool.

Annotators write and rework their own annotations; administrators validate or
correct anyone's. Mutating commands act as a user: pass --as <id> or set
ANNOBENCH_USER.

Examples:
  annobench init                 # Create a workbench in the current directory
  annobench session              # Interactive login + menus
  annobench text add "Il pleut"  # Add a text
  annobench annotate add T1 "nice" --as u1
  annobench review validate A1 --as admin1`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupSetup, Title: "Setup commands:"},
		&cobra.Group{ID: GroupWorkbench, Title: "Workbench commands:"},
		&cobra.Group{ID: GroupReview, Title: "Review commands:"},
	)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix, err)
		os.Exit(1)
	}
}

func requireSubcommand(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}
