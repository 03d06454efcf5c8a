// Package schema checks a scorecard report for internal consistency
// before it is written.
package schema

import (
	"fmt"
	"math"

	"github.com/dshills/scorecard/internal/scoring"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Report for structural validity and verifies that the
// derived fields agree with the records they were computed from.
func Validate(r *scoring.Report) []ValidationError {
	var errs []ValidationError

	if r.Tool == "" {
		errs = append(errs, ValidationError{"tool", "required"})
	}
	if r.Version == "" {
		errs = append(errs, ValidationError{"version", "required"})
	}
	if r.GeneratedAt.IsZero() {
		errs = append(errs, ValidationError{"generated_at", "required"})
	}
	if len(r.Records) == 0 {
		errs = append(errs, ValidationError{"records", "at least one record required"})
	}

	// Aggregate
	pct := r.Aggregate.Percent
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		errs = append(errs, ValidationError{"aggregate.percent", fmt.Sprintf("out of range: %v", pct)})
	}
	if agg, err := scoring.ComputeAggregate(r.Records); err != nil {
		errs = append(errs, ValidationError{"aggregate", err.Error()})
	} else {
		if agg.Percent != pct {
			errs = append(errs, ValidationError{"aggregate.percent", fmt.Sprintf("percent %v does not match computed %v", pct, agg.Percent)})
		}
		if agg.Count != r.Aggregate.Count {
			errs = append(errs, ValidationError{"aggregate.applicable_count", fmt.Sprintf("expected %d, got %d", agg.Count, r.Aggregate.Count)})
		}
	}

	// Recommendation
	if !r.Tier.Valid() {
		errs = append(errs, ValidationError{"tier", fmt.Sprintf("invalid tier: %q", r.Tier)})
	} else if want := scoring.Recommend(pct); r.Tier != want {
		errs = append(errs, ValidationError{"tier", fmt.Sprintf("tier %s does not match %s for %v%%", r.Tier, want, pct)})
	}
	if r.Recommendation != r.Tier.Text() {
		errs = append(errs, ValidationError{"recommendation", "does not match tier text"})
	}

	if want := scoring.ComputeSummary(r.Records); r.Summary != want {
		errs = append(errs, ValidationError{"summary", fmt.Sprintf("expected %+v, got %+v", want, r.Summary)})
	}

	// Records
	for i, rec := range r.Records {
		prefix := fmt.Sprintf("records[%d]", i)
		if rec.QuestionID == "" {
			errs = append(errs, ValidationError{prefix + ".question_id", "required"})
		}
		if rec.Applicable && rec.Score != nil && !rec.Scored() {
			errs = append(errs, ValidationError{prefix + ".score", fmt.Sprintf("applicable score %d outside 1-10", *rec.Score)})
		}
	}

	return errs
}
