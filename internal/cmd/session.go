package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlaforge/annobench/internal/style"
	"github.com/mlaforge/annobench/internal/tui"
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	GroupID: GroupWorkbench,
	Short:   "Start an interactive workbench session",
	Long: `Open the interactive workbench: log in with a user id and password, then
work through the role menus (browse texts, annotate, review, collections).

Changes are saved when the session ends.`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	dirty, err := tui.Run(w.store, w.log)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}

	if err := w.save(); err != nil {
		return err
	}
	fmt.Printf("%s session saved\n", style.SuccessPrefix)
	return nil
}
