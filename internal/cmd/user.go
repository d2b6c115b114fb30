package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlaforge/annobench/internal/model"
	"github.com/mlaforge/annobench/internal/style"
)

var userCmd = &cobra.Command{
	Use:     "user",
	GroupID: GroupSetup,
	Short:   "Manage workbench users",
	Long: `Manage the users registered in this workbench.

Each user is either an administrator (validates and corrects annotations) or
an annotator (writes and reworks their own annotations).

Examples:
  annobench user list
  annobench user add u2 --name Carol --role annotateur --password pw`,
	RunE: requireSubcommand,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all users",
	RunE:  runUserList,
}

var userAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Register a new user",
	Long: `Register a new user in the workbench.

The role is ADMIN or ANNOTATEUR (case-insensitive). Re-using an existing id
is rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: runUserAdd,
}

var (
	userAddName     string
	userAddEmail    string
	userAddRole     string
	userAddPassword string
)

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userAddCmd)

	userAddCmd.Flags().StringVar(&userAddName, "name", "", "Display name")
	userAddCmd.Flags().StringVar(&userAddEmail, "email", "", "Email address")
	userAddCmd.Flags().StringVar(&userAddRole, "role", model.RoleAnnotator, "ADMIN or ANNOTATEUR")
	userAddCmd.Flags().StringVar(&userAddPassword, "password", "", "Password (stored in clear in the user file)")
	userAddCmd.MarkFlagRequired("password")
}

func runUserList(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	users := w.store.Users()
	if len(users) == 0 {
		fmt.Println("No users registered. Run 'annobench user add <id>' to add the first one.")
		return nil
	}
	for _, u := range users {
		fmt.Printf("%s  %s  %s  %s\n",
			style.Bold.Render(u.ID()), u.Name(), style.Dim.Render(u.Email()), u.Role())
	}
	return nil
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	id := args[0]
	if _, exists := w.store.User(id); exists {
		return fmt.Errorf("user %q already exists", id)
	}

	u, err := model.NewUser(id, userAddName, userAddEmail, strings.ToUpper(userAddRole), userAddPassword)
	if err != nil {
		return err
	}
	w.store.PutUser(u)

	if err := w.save(); err != nil {
		return err
	}
	fmt.Printf("%s added %s user %s\n", style.SuccessPrefix, u.Role(), id)
	return nil
}
