package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlaforge/annobench/internal/auth"
	"github.com/mlaforge/annobench/internal/style"
)

var loginCmd = &cobra.Command{
	Use:     "login <id>",
	GroupID: GroupSetup,
	Short:   "Check credentials for a user",
	Long: `Verify a user's password against the registry and print the role on
success. The password is prompted without echo on a terminal.

Scripted commands still act through --as or ANNOBENCH_USER; login is a
credential check, it does not persist a session.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	password, err := auth.PromptPassword("password: ")
	if err != nil {
		return err
	}

	u, err := auth.Login(w.store, args[0], password)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%s), role %s\n",
		style.SuccessPrefix, u.Name(), u.ID(), style.Bold.Render(u.Role()))
	fmt.Printf("export %s=%s\n", auth.EnvUser, u.ID())
	return nil
}
