package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/scorecard/internal/assessment"
	"github.com/dshills/scorecard/internal/redact"
	"github.com/dshills/scorecard/internal/render"
	"github.com/dshills/scorecard/internal/schema"
	"github.com/dshills/scorecard/internal/scoring"
)

type scoreFlags struct {
	output    string
	format    string
	redact    bool
	failBelow float64
}

// now is replaced in tests.
var now = time.Now

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score <assessment.csv>",
		Short: "Compute the readiness score and write the scorecard report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("redact") && cfg != nil {
				f.redact = cfg.Redact
			}
			return runScore(cmd.OutOrStdout(), args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "", "Report path (default: <csv_stem>-report.md next to the CSV)")
	flags.StringVar(&f.format, "format", "md", "Report format: md or json")
	flags.BoolVar(&f.redact, "redact", false, "Mask credentials in comments before writing the report")
	flags.Float64Var(&f.failBelow, "fail-below", 0, "Exit 2 if the score is below this percentage")

	return cmd
}

func runScore(out io.Writer, csvPath string, f *scoreFlags) error {
	ext, err := formatExt(f.format)
	if err != nil {
		return exitError(exitInput, "%v", err)
	}

	// 1. Load and parse
	logger.Debug("loading assessment", zap.String("path", csvPath))
	sheet, err := assessment.Load(csvPath)
	if err != nil {
		switch {
		case errors.Is(err, assessment.ErrFileNotFound):
			return exitError(exitInput, "File not found: %s", csvPath)
		case errors.Is(err, assessment.ErrMissingColumn), errors.Is(err, assessment.ErrNoRows):
			return exitError(exitInput, "%s: %s", csvPath, errorsRoot(err))
		}
		return exitError(exitInput, "failed to load assessment: %v", err)
	}
	logger.Debug("parsed assessment", zap.Int("records", len(sheet.Records)), zap.String("hash", sheet.Hash))
	for _, rec := range sheet.Records {
		if rec.Applicable && rec.Score == nil {
			logger.Warn("applicable row has no score in 1..10; excluded from the aggregate",
				zap.String("question_id", rec.QuestionID),
				zap.Int("line", rec.Line))
		}
	}

	// 2. Redact comments
	records := sheet.Records
	if f.redact {
		var changed int
		records, changed = redact.Records(records)
		logger.Debug("redacted comments", zap.Int("changed", changed))
	}

	// 3. Score
	rep, err := scoring.Build(records, now())
	if err != nil {
		if errors.Is(err, scoring.ErrNoScoredRecords) {
			return exitError(exitNoScore, "No applicable scored rows; cannot compute percentage")
		}
		return err
	}
	rep.Tool = "scorecard"
	rep.Version = version
	rep.Input = scoring.Input{
		File:     filepath.Base(csvPath),
		Hash:     sheet.Hash,
		Redacted: f.redact,
	}
	logger.Debug("computed aggregate",
		zap.Float64("percent", rep.Aggregate.Percent),
		zap.Int("applicable", rep.Aggregate.Count),
		zap.String("tier", string(rep.Tier)))

	// 4. Validate
	if errs := schema.Validate(rep); len(errs) > 0 {
		for _, e := range errs {
			logger.Error("report validation", zap.String("path", e.Path), zap.String("message", e.Message))
		}
		return exitError(exitInvalid, "report failed validation: %s", errs[0])
	}

	// 5. Render and write
	var data []byte
	switch f.format {
	case "json":
		data, err = render.JSON(rep)
		if err != nil {
			return err
		}
	default:
		data = []byte(render.Markdown(rep))
	}

	outPath := f.output
	if outPath == "" {
		outPath = defaultOutputPath(csvPath, ext)
	}
	logger.Debug("writing report", zap.String("path", outPath))
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintf(out, "Score: %s%%\n", render.Percent(rep.Aggregate.Percent))
	fmt.Fprintf(out, "Recommendation: %s\n", rep.Recommendation)
	fmt.Fprintf(out, "Report: %s\n", outPath)

	// 6. Policy
	if f.failBelow > 0 && rep.Aggregate.Percent < f.failBelow {
		return exitError(exitPolicy, "score %s%% is below %s%%", render.Percent(rep.Aggregate.Percent), render.Percent(f.failBelow))
	}
	return nil
}

func formatExt(format string) (string, error) {
	switch format {
	case "md":
		return ".md", nil
	case "json":
		return ".json", nil
	}
	return "", fmt.Errorf("unknown format: %s", format)
}

// defaultOutputPath puts the report next to the CSV as <stem>-report<ext>.
func defaultOutputPath(csvPath, ext string) string {
	dir, base := filepath.Split(csvPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+"-report"+ext)
}

// errorsRoot returns the innermost wrapped error.
func errorsRoot(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
