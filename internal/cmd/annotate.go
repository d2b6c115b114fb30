package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlaforge/annobench/internal/observer"
	"github.com/mlaforge/annobench/internal/style"
)

var annotateCmd = &cobra.Command{
	Use:     "annotate",
	GroupID: GroupWorkbench,
	Short:   "Write and rework annotations",
	Long: `Create annotations on texts and rework your own.

New annotations start pending; an administrator validates or corrects them
with 'annobench review'. Editing one of your annotations sends it back to
pending.

Examples:
  annobench annotate add T1 "belle image" --as u1
  annobench annotate edit A3 "image saisissante" --as u1`,
	RunE: requireSubcommand,
}

var annotateAddCmd = &cobra.Command{
	Use:   "add <textID> <content>",
	Short: "Annotate a text",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnnotateAdd,
}

var annotateEditCmd = &cobra.Command{
	Use:   "edit <annotationID> <content>",
	Short: "Rework one of your annotations",
	Long: `Replace the content of an annotation you authored. The annotation goes
back to pending review. Editing someone else's annotation is rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: runAnnotateEdit,
}

var annotateAs string

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.AddCommand(annotateAddCmd)
	annotateCmd.AddCommand(annotateEditCmd)

	annotateCmd.PersistentFlags().StringVar(&annotateAs, "as", "", "Acting annotator id (defaults to ANNOBENCH_USER)")
}

func runAnnotateAdd(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	annotator, err := w.asAnnotator(annotateAs)
	if err != nil {
		return err
	}

	text, ok := w.store.Text(args[0])
	if !ok {
		return fmt.Errorf("no text %q", args[0])
	}

	// Surface the text's notification in the command output.
	text.Subscribe(observer.NewLogObserver(w.log))

	ann := annotator.Annotate(text, w.store.NextAnnotationID(), args[1])
	w.store.PutAnnotation(ann)

	if err := w.save(); err != nil {
		return err
	}
	fmt.Printf("%s added annotation %s on %s %s\n",
		style.SuccessPrefix, style.Bold.Render(ann.ID), text.ID, style.PendingBadge)
	return nil
}

func runAnnotateEdit(cmd *cobra.Command, args []string) error {
	w, err := openWorkbench()
	if err != nil {
		return err
	}
	defer w.close()

	annotator, err := w.asAnnotator(annotateAs)
	if err != nil {
		return err
	}

	ann, ok := w.store.Annotation(args[0])
	if !ok {
		return fmt.Errorf("no annotation %q", args[0])
	}

	if err := annotator.Modify(ann, args[1]); err != nil {
		return err
	}

	if err := w.save(); err != nil {
		return err
	}
	fmt.Printf("%s edited %s, back to %s\n",
		style.SuccessPrefix, style.Bold.Render(ann.ID), style.PendingBadge)
	return nil
}
