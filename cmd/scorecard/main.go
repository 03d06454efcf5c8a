package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/scorecard/internal/config"
)

var version = "0.1.0"

// Exit codes.
const (
	exitPolicy   = 2 // --fail-below hit, catalogue drift
	exitInput    = 3 // missing file or directory, bad header, no rows
	exitNoScore  = 4 // nothing applicable to average
	exitInvalid  = 5 // report failed consistency checks
	exitInternal = 1
)

var (
	verbose bool
	envFile string

	logger = zap.NewNop()
	cfg    *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scorecard",
		Short:         "Score production-readiness assessments and list questionnaire ids",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			zc.Encoding = "console"
			zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l

			c, err := config.Load(envFile)
			if err != nil {
				return exitError(exitInput, "%v", err)
			}
			cfg = c
			logger.Debug("config loaded",
				zap.String("questionnaire_dir", cfg.QuestionnaireDir),
				zap.String("suffix", cfg.DocSuffix),
				zap.String("index", cfg.IndexDoc),
				zap.Bool("redact", cfg.Redact))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&verbose, "verbose", false, "Log processing steps to stderr")
	pf.StringVar(&envFile, "env-file", config.DefaultEnvFile, "Dotenv file to read settings from, if present")

	root.AddCommand(newScoreCmd(), newQuestionsCmd(), newSyncCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitInternal)
	}
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
