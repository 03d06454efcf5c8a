package scoring

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/dshills/scorecard/internal/assessment"
)

// ErrNoScoredRecords is returned when no record is applicable with a valid score.
var ErrNoScoredRecords = errors.New("no applicable scored rows; cannot compute percentage")

// Zone thresholds on the 1-10 scale.
const (
	amberFloor = 4
	okFloor    = 8
)

// Recommendation band floors, inclusive.
const (
	thresholdHigh = 80
	thresholdMid  = 60
	thresholdLow  = 40
)

// ZoneOf classifies a score. A nil score is N/A.
func ZoneOf(score *int) Zone {
	switch {
	case score == nil:
		return ZoneNA
	case *score < amberFloor:
		return ZoneRed
	case *score < okFloor:
		return ZoneAmber
	default:
		return ZoneOK
	}
}

// ComputeAggregate averages the scores of applicable, validly scored
// records as a percentage of the maximum, rounded half away from zero to
// one decimal.
func ComputeAggregate(records []assessment.Record) (Aggregate, error) {
	var scores []float64
	for _, r := range records {
		if r.Scored() {
			scores = append(scores, float64(*r.Score))
		}
	}
	if len(scores) == 0 {
		return Aggregate{}, ErrNoScoredRecords
	}
	n := len(scores)
	// Percentage in tenths: sum/(10n) * 100 * 10.
	tenths := floats.Sum(scores) * 100 / float64(n)
	return Aggregate{Percent: math.Round(tenths) / 10, Count: n}, nil
}

// Recommend maps a percentage to its recommendation tier.
func Recommend(percent float64) Tier {
	switch {
	case percent >= thresholdHigh:
		return TierReady
	case percent >= thresholdMid:
		return TierFine
	case percent >= thresholdLow:
		return TierOkay
	default:
		return TierNeedsWork
	}
}
