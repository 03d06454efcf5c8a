package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/scorecard/internal/catalogue"
)

// catalogueFlags are shared by the commands that read the questionnaire.
type catalogueFlags struct {
	dir    string
	suffix string
	index  string
}

func (c *catalogueFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&c.dir, "dir", "", "Questionnaire directory (default from SCORECARD_QUESTIONNAIRE_DIR or ./questionnaire)")
	flags.StringVar(&c.suffix, "suffix", "", "Catalogue document suffix (default .md)")
	flags.StringVar(&c.index, "index", "", "Index document to skip (default index.md)")
}

// resolve fills unset values from the loaded config.
func (c *catalogueFlags) resolve() (string, catalogue.Options) {
	dir := c.dir
	opts := catalogue.Options{Suffix: c.suffix, Index: c.index}
	if cfg != nil {
		if dir == "" {
			dir = cfg.QuestionnaireDir
		}
		base := cfg.Catalogue()
		if opts.Suffix == "" {
			opts.Suffix = base.Suffix
		}
		if opts.Index == "" {
			opts.Index = base.Index
		}
	}
	if dir == "" {
		dir = "questionnaire"
	}
	return dir, opts
}

func catalogueError(dir string, err error) error {
	if errors.Is(err, catalogue.ErrDirNotFound) {
		return exitError(exitInput, "Questionnaire dir not found: %s", dir)
	}
	return exitError(exitInput, "failed to read questionnaire: %v", err)
}

type questionsFlags struct {
	catalogueFlags
	long bool
}

func newQuestionsCmd() *cobra.Command {
	f := &questionsFlags{}

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print every question id declared in the questionnaire, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestions(cmd.OutOrStdout(), f)
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&f.long, "long", false, "Also print title, category and source file, tab-separated")

	return cmd
}

func runQuestions(out io.Writer, f *questionsFlags) error {
	dir, opts := f.resolve()
	logger.Debug("scanning questionnaire", zap.String("dir", dir), zap.String("suffix", opts.Suffix))

	if f.long {
		qs, err := catalogue.Questions(dir, opts)
		if err != nil {
			return catalogueError(dir, err)
		}
		for _, q := range qs {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", q.ID, q.Title, q.Category, q.File)
		}
		logger.Debug("listed questions", zap.Int("count", len(qs)))
		return nil
	}

	n := 0
	for id, err := range catalogue.IDs(dir, opts) {
		if err != nil {
			return catalogueError(dir, err)
		}
		fmt.Fprintln(out, id)
		n++
	}
	logger.Debug("listed questions", zap.Int("count", n))
	return nil
}
