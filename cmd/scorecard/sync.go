package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/scorecard/internal/assessment"
	"github.com/dshills/scorecard/internal/catalogue"
	"github.com/dshills/scorecard/internal/drift"
)

type syncFlags struct {
	catalogueFlags
	diffOut string
}

func newSyncCmd() *cobra.Command {
	f := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync <assessment.csv>",
		Short: "Check that an assessment answers exactly the questions in the questionnaire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.OutOrStdout(), args[0], f)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.diffOut, "diff-out", "", "Also write the id diff to this file")

	return cmd
}

func runSync(out io.Writer, csvPath string, f *syncFlags) error {
	dir, opts := f.resolve()

	ids, err := catalogue.Collect(dir, opts)
	if err != nil {
		return catalogueError(dir, err)
	}

	sheet, err := assessment.Load(csvPath)
	if err != nil {
		if errors.Is(err, assessment.ErrFileNotFound) {
			return exitError(exitInput, "File not found: %s", csvPath)
		}
		return exitError(exitInput, "%s: %s", csvPath, errorsRoot(err))
	}
	answered := make([]string, len(sheet.Records))
	for i, r := range sheet.Records {
		answered[i] = r.QuestionID
	}
	logger.Debug("comparing ids", zap.Int("catalogue", len(ids)), zap.Int("answered", len(answered)))

	res := drift.Compare(ids, answered)
	if f.diffOut != "" {
		logger.Debug("writing id diff", zap.String("path", f.diffOut))
		if err := drift.WriteDiffFile(res, f.diffOut); err != nil {
			return err
		}
	}
	if res.Clean() {
		fmt.Fprintf(out, "In sync: %d questions\n", len(ids))
		return nil
	}

	printList(out, "Unanswered (in questionnaire, not in CSV)", res.Unanswered)
	printList(out, "Unknown (in CSV, not in questionnaire)", res.Unknown)
	printList(out, "Answered more than once", res.Duplicates)
	if res.Diff != "" {
		fmt.Fprintf(out, "\n%s", res.Diff)
	}
	return exitError(exitPolicy, "assessment %s is out of sync with %s", csvPath, dir)
}

func printList(out io.Writer, title string, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", title)
	for _, id := range ids {
		fmt.Fprintf(out, "  %s\n", id)
	}
}
