package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlaforge/annobench/internal/style"
)

var reviewCmd = &cobra.Command{
	Use:     "review",
	GroupID: GroupReview,
	Short:   "Validate and correct annotations",
	Long: `Administrator review of annotations.

'validate' accepts an annotation as written; 'correct' replaces its content
and validates it in the same step.

Examples:
  annobench review pending
  annobench review validate A1 --as admin1
  annobench review correct A1 "meilleure formulation" --as admin1`,
	RunE: requireSubcommand,
}

var reviewPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List annotations awaiting review",
	RunE:  runReviewPending,
}

var reviewValidateCmd = &cobra.Command{
	Use:   "validate <annotationID>",
	Short: "Mark an annotation as valid",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewValidate,
}

var reviewCorrectCmd = &cobra.Command{
	Use:   "correct <annotationID> <content>",
	Short: "Replace an annotation's content and validate it",
	Args:  cobra.ExactArgs(2),
	RunE:  runReviewCorrect,
}

var reviewAs string

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.AddCommand(reviewPendingCmd)
	reviewCmd.AddCommand(reviewValidateCmd)
	reviewCmd.AddCommand(reviewCorrectCmd)

	reviewCmd.PersistentFlags().StringVar(&reviewAs, "as", "", "Acting administrator id (defaults to ANNOBENCH_USER)")
}

func runReviewPending(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	count := 0
	for _, ann := range w.store.Annotations() {
		if ann.Valid {
			continue
		}
		count++
		fmt.Printf("%s on %s  %s  %s\n",
			style.Bold.Render(ann.ID), ann.TextID,
			oneLine(ann.Content, 60), style.Dim.Render("by "+ann.AuthorID))
	}
	if count == 0 {
		fmt.Println("Nothing pending.")
	}
	return nil
}

func runReviewValidate(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	admin, err := w.asAdministrator(reviewAs)
	if err != nil {
		return err
	}

	ann, ok := w.store.Annotation(args[0])
	if !ok {
		return fmt.Errorf("no annotation %q", args[0])
	}
	text, ok := w.store.Text(ann.TextID)
	if !ok {
		return fmt.Errorf("annotation %s references missing text %s", ann.ID, ann.TextID)
	}

	if err := admin.Validate(text, ann); err != nil {
		return err
	}

	if err := w.save(); err != nil {
		return err
	}
	fmt.Printf("%s %s is now %s\n", style.SuccessPrefix, style.Bold.Render(ann.ID), style.ValidBadge)
	return nil
}

func runReviewCorrect(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	admin, err := w.asAdministrator(reviewAs)
	if err != nil {
		return err
	}

	ann, ok := w.store.Annotation(args[0])
	if !ok {
		return fmt.Errorf("no annotation %q", args[0])
	}
	text, ok := w.store.Text(ann.TextID)
	if !ok {
		return fmt.Errorf("annotation %s references missing text %s", ann.ID, ann.TextID)
	}

	if err := admin.Correct(text, ann, args[1]); err != nil {
		return err
	}

	if err := w.save(); err != nil {
		return err
	}
	fmt.Printf("%s corrected %s, now %s\n", style.SuccessPrefix, style.Bold.Render(ann.ID), style.ValidBadge)
	return nil
}
