package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlaforge/annobench/internal/style"
	"github.com/mlaforge/annobench/internal/workspace"
)

var initCmd = &cobra.Command{
	Use:     "init [dir]",
	GroupID: GroupSetup,
	Short:   "Create a workbench in a directory",
	Long: `Initialize an annobench workbench: write annobench.toml and create the
data directory that will hold the four resource files.

With no argument the current directory becomes the workbench root.

Example:
  annobench init ~/corpus`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return err
	}
	if err := workspace.Init(root); err != nil {
		return err
	}
	fmt.Printf("%s workbench initialized in %s\n", style.SuccessPrefix, root)
	return nil
}
