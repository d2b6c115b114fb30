package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlaforge/annobench/internal/model"
	"github.com/mlaforge/annobench/internal/style"
)

var textCmd = &cobra.Command{
	Use:     "text",
	GroupID: GroupWorkbench,
	Short:   "Manage texts",
	Long: `Add and inspect the texts of the workbench.

Texts get generated ids (T1, T2, ...) and are never deleted.

Examples:
  annobench text add "Il pleut sur la ville"
  annobench text add --file poem.txt
  annobench text list
  annobench text show T1`,
	RunE: requireSubcommand,
}

var textAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a new text",
	Long: `Add a text with the given content, or with the contents of --file.
Prints the generated id.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTextAdd,
}

var textListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all texts",
	RunE:  runTextList,
}

var textShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a text with its annotations",
	Args:  cobra.ExactArgs(1),
	RunE:  runTextShow,
}

var textAddFile string

func init() {
	rootCmd.AddCommand(textCmd)
	textCmd.AddCommand(textAddCmd)
	textCmd.AddCommand(textListCmd)
	textCmd.AddCommand(textShowCmd)

	textAddCmd.Flags().StringVar(&textAddFile, "file", "", "Read the content from a file")
}

func runTextAdd(cmd *cobra.Command, args []string) error {
	var content string
	switch {
	case textAddFile != "":
		raw, err := os.ReadFile(textAddFile)
		if err != nil {
			return err
		}
		content = strings.TrimRight(string(raw), "\n")
	case len(args) == 1:
		content = args[0]
	default:
		return fmt.Errorf("provide the content as an argument or with --file")
	}

	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	text := model.NewText(w.store.NextTextID(), content)
	w.store.PutText(text)

	if err := w.save(); err != nil {
		return err
	}
	fmt.Printf("%s added text %s\n", style.SuccessPrefix, style.Bold.Render(text.ID))
	return nil
}

func runTextList(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	texts := w.store.Texts()
	if len(texts) == 0 {
		fmt.Println("No texts yet. Run 'annobench text add' to create one.")
		return nil
	}
	for _, t := range texts {
		fmt.Printf("%s  %s  %s\n",
			style.Bold.Render(t.ID), oneLine(t.Content, 70),
			style.Dim.Render(fmt.Sprintf("(%d annotations)", len(t.Annotations()))))
	}
	return nil
}

func runTextShow(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	text, ok := w.store.Text(args[0])
	if !ok {
		return fmt.Errorf("no text %q", args[0])
	}

	fmt.Printf("%s\n%s\n", style.Title.Render("Text "+text.ID), text.Content)
	if len(text.Annotations()) == 0 {
		fmt.Println(style.Dim.Render("(no annotations)"))
		return nil
	}
	fmt.Println()
	for _, ann := range text.Annotations() {
		fmt.Printf("  %s %s %s %s\n",
			style.Bold.Render(ann.ID), style.Badge(ann.Valid),
			oneLine(ann.Content, 60), style.Dim.Render("by "+ann.AuthorID))
	}
	return nil
}

// oneLine flattens and shortens content for listings.
func oneLine(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
