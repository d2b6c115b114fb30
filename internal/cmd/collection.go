package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlaforge/annobench/internal/model"
	"github.com/mlaforge/annobench/internal/style"
)

var collectionCmd = &cobra.Command{
	Use:     "collection",
	GroupID: GroupWorkbench,
	Short:   "Group texts into named collections",
	Long: `Collections are named, ordered groupings of texts. A text can belong to
any number of collections; the collection references the text, it does not
copy it.

Examples:
  annobench collection create hiver
  annobench collection add hiver T1
  annobench collection list
  annobench collection show hiver`,
	RunE: requireSubcommand,
}

var collectionCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionCreate,
}

var collectionAddCmd = &cobra.Command{
	Use:   "add <name> <textID>",
	Short: "Add a text to a collection",
	Args:  cobra.ExactArgs(2),
	RunE:  runCollectionAdd,
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections",
	RunE:  runCollectionList,
}

var collectionShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the texts of a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionShow,
}

func init() {
	rootCmd.AddCommand(collectionCmd)
	collectionCmd.AddCommand(collectionCreateCmd)
	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionShowCmd)
}

func runCollectionCreate(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	if err := w.store.AddCollection(model.NewCollection(args[0])); err != nil {
		return err
	}

	if err := w.save(); err != nil {
		return err
	}
	fmt.Printf("%s created collection %s\n", style.SuccessPrefix, style.Bold.Render(args[0]))
	return nil
}

func runCollectionAdd(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	name, textID := args[0], args[1]
	col, ok := w.store.Collection(name)
	if !ok {
		return fmt.Errorf("no collection %q", name)
	}
	text, ok := w.store.Text(textID)
	if !ok {
		return fmt.Errorf("no text %q", textID)
	}
	if col.Contains(text) {
		return fmt.Errorf("%s is already in %s", textID, name)
	}

	col.Add(text)

	if err := w.save(); err != nil {
		return err
	}
	fmt.Printf("%s added %s to %s\n", style.SuccessPrefix, style.Bold.Render(textID), name)
	return nil
}

func runCollectionList(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	cols := w.store.Collections()
	if len(cols) == 0 {
		fmt.Println("No collections yet. Run 'annobench collection create <name>'.")
		return nil
	}
	for _, col := range cols {
		fmt.Printf("%s  %s\n", style.Bold.Render(col.Name),
			style.Dim.Render(fmt.Sprintf("(%d texts)", len(col.Texts()))))
	}
	return nil
}

func runCollectionShow(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	col, ok := w.store.Collection(args[0])
	if !ok {
		return fmt.Errorf("no collection %q", args[0])
	}

	fmt.Println(style.Title.Render("Collection " + col.Name))
	if len(col.Texts()) == 0 {
		fmt.Println(style.Dim.Render("(empty)"))
		return nil
	}
	for _, t := range col.Texts() {
		fmt.Printf("%s  %s\n", style.Bold.Render(t.ID), oneLine(t.Content, 70))
	}
	return nil
}
