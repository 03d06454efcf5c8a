// Package config resolves tool settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dshills/scorecard/internal/catalogue"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Environment variable names.
const (
	EnvQuestionnaireDir = "SCORECARD_QUESTIONNAIRE_DIR"
	EnvDocSuffix        = "SCORECARD_DOC_SUFFIX"
	EnvIndexDoc         = "SCORECARD_INDEX_DOC"
	EnvRedact           = "SCORECARD_REDACT"
)

// Config holds settings shared by the subcommands. Flags override it.
type Config struct {
	QuestionnaireDir string
	DocSuffix        string
	IndexDoc         string
	Redact           bool
}

// Catalogue returns the catalogue options for this configuration.
func (c *Config) Catalogue() catalogue.Options {
	return catalogue.Options{Suffix: c.DocSuffix, Index: c.IndexDoc}
}

// Load reads envFile if it exists, without overriding variables already
// set, and then builds a Config from the environment. A missing envFile is
// not an error; a malformed one is.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config.Load: %s: %w", envFile, err)
		}
	}

	redact := false
	if v := os.Getenv(EnvRedact); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config.Load: %s: %w", EnvRedact, err)
		}
		redact = parsed
	}

	return &Config{
		QuestionnaireDir: getEnvOrDefault(EnvQuestionnaireDir, "questionnaire"),
		DocSuffix:        getEnvOrDefault(EnvDocSuffix, catalogue.DefaultSuffix),
		IndexDoc:         getEnvOrDefault(EnvIndexDoc, catalogue.DefaultIndex),
		Redact:           redact,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
