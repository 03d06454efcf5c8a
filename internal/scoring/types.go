// Package scoring classifies assessment answers and computes the
// aggregate readiness score and recommendation.
package scoring

import (
	"time"

	"github.com/dshills/scorecard/internal/assessment"
)

// TimestampLayout formats Report.GeneratedAt in rendered output.
const TimestampLayout = "2006-01-02 15:04 UTC"

// Report is everything the renderers need to produce a scorecard.
type Report struct {
	Tool           string              `json:"tool"`
	Version        string              `json:"version"`
	Input          Input               `json:"input"`
	GeneratedAt    time.Time           `json:"generated_at"`
	Aggregate      Aggregate           `json:"aggregate"`
	Tier           Tier                `json:"tier"`
	Recommendation string              `json:"recommendation"`
	Summary        Summary             `json:"summary"`
	Records        []assessment.Record `json:"records"`
}

// Input describes the answer sheet the report was built from.
type Input struct {
	File     string `json:"file"`
	Hash     string `json:"hash"`
	Redacted bool   `json:"redacted"`
}

// Aggregate is the weighted percentage over scored records.
type Aggregate struct {
	Percent float64 `json:"percent"`
	Count   int     `json:"applicable_count"`
}

// Summary holds per-zone counts over applicable records plus the number
// of excluded (not applicable) ones.
type Summary struct {
	RedCount      int `json:"red_count"`
	AmberCount    int `json:"amber_count"`
	OKCount       int `json:"ok_count"`
	UnscoredCount int `json:"unscored_count"`
	ExcludedCount int `json:"excluded_count"`
}

// GeneratedStamp returns the generation time in UTC using TimestampLayout.
func (r *Report) GeneratedStamp() string {
	return r.GeneratedAt.UTC().Format(TimestampLayout)
}
