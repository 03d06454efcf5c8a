package scoring

import (
	"time"

	"github.com/dshills/scorecard/internal/assessment"
)

// ComputeSummary counts applicable records per zone and excluded records.
// Applicable records without a valid score are counted as unscored.
func ComputeSummary(records []assessment.Record) Summary {
	var s Summary
	for _, r := range records {
		if !r.Applicable {
			s.ExcludedCount++
			continue
		}
		switch ZoneOf(r.Score) {
		case ZoneRed:
			s.RedCount++
		case ZoneAmber:
			s.AmberCount++
		case ZoneOK:
			s.OKCount++
		default:
			s.UnscoredCount++
		}
	}
	return s
}

// InZone returns applicable records that fall in zone z, in input order.
func InZone(records []assessment.Record, z Zone) []assessment.Record {
	var result []assessment.Record
	for _, r := range records {
		if r.Applicable && r.Score != nil && ZoneOf(r.Score) == z {
			result = append(result, r)
		}
	}
	return result
}

// Excluded returns records marked not applicable, in input order.
func Excluded(records []assessment.Record) []assessment.Record {
	var result []assessment.Record
	for _, r := range records {
		if !r.Applicable {
			result = append(result, r)
		}
	}
	return result
}

// Build computes the aggregate, recommendation, and summary for records.
// It returns ErrNoScoredRecords when nothing can be averaged.
func Build(records []assessment.Record, generatedAt time.Time) (*Report, error) {
	agg, err := ComputeAggregate(records)
	if err != nil {
		return nil, err
	}
	tier := Recommend(agg.Percent)
	return &Report{
		GeneratedAt:    generatedAt.UTC(),
		Aggregate:      agg,
		Tier:           tier,
		Recommendation: tier.Text(),
		Summary:        ComputeSummary(records),
		Records:        records,
	}, nil
}
