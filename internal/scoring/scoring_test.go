package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/scorecard/internal/assessment"
)

func intp(n int) *int { return &n }

func rec(id string, applicable bool, score *int, comment string) assessment.Record {
	return assessment.Record{QuestionID: id, Applicable: applicable, Score: score, Comment: comment}
}

// --- Enum validation tests ---

func TestZoneValid(t *testing.T) {
	for _, z := range []Zone{ZoneRed, ZoneAmber, ZoneOK, ZoneNA} {
		assert.True(t, z.Valid(), "expected %q to be valid", z)
	}
	assert.False(t, Zone("Green").Valid())
}

func TestTierText(t *testing.T) {
	for _, tier := range []Tier{TierReady, TierFine, TierOkay, TierNeedsWork} {
		assert.True(t, tier.Valid())
		assert.NotEmpty(t, tier.Text(), "tier %s has no text", tier)
	}
	assert.False(t, Tier("MAYBE").Valid())
	assert.Empty(t, Tier("MAYBE").Text())
}

// --- Zone tests ---

func TestZoneOf(t *testing.T) {
	want := map[int]Zone{
		1: ZoneRed, 2: ZoneRed, 3: ZoneRed,
		4: ZoneAmber, 5: ZoneAmber, 6: ZoneAmber, 7: ZoneAmber,
		8: ZoneOK, 9: ZoneOK, 10: ZoneOK,
	}
	for s, z := range want {
		assert.Equal(t, z, ZoneOf(intp(s)), "score %d", s)
	}
	assert.Equal(t, ZoneNA, ZoneOf(nil))
}

// --- Aggregate tests ---

func TestComputeAggregate(t *testing.T) {
	tests := []struct {
		name      string
		records   []assessment.Record
		wantPct   float64
		wantCount int
	}{
		{
			"mixed applicability",
			[]assessment.Record{
				rec("q1", true, intp(3), "slow"),
				rec("q2", false, nil, "n/a"),
				rec("q3", true, intp(9), ""),
			},
			60.0, 2,
		},
		{"all tens", []assessment.Record{rec("a", true, intp(10), ""), rec("b", true, intp(10), "")}, 100.0, 2},
		{"single one", []assessment.Record{rec("a", true, intp(1), "")}, 10.0, 1},
		{"thirds", []assessment.Record{
			rec("a", true, intp(7), ""), rec("b", true, intp(7), ""), rec("c", true, intp(6), ""),
		}, 66.7, 3},
		{"half rounds up", append(repeat(rec("a", true, intp(1), ""), 7), rec("b", true, intp(2), "")), 11.3, 8},
		{"inapplicable score ignored", []assessment.Record{
			rec("a", false, intp(2), ""), rec("b", true, intp(8), ""),
		}, 80.0, 1},
		{"unscored applicable ignored", []assessment.Record{
			rec("a", true, nil, ""), rec("b", true, intp(5), ""),
		}, 50.0, 1},
		{"duplicates counted twice", []assessment.Record{
			rec("a", true, intp(2), ""), rec("a", true, intp(2), ""), rec("b", true, intp(8), ""),
		}, 40.0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := ComputeAggregate(tt.records)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantPct, agg.Percent, 1e-9)
			assert.Equal(t, tt.wantCount, agg.Count)
		})
	}
}

func repeat(r assessment.Record, n int) []assessment.Record {
	out := make([]assessment.Record, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func TestComputeAggregateNoScored(t *testing.T) {
	cases := [][]assessment.Record{
		nil,
		{rec("a", false, intp(5), "")},
		{rec("a", true, nil, "")},
		{rec("a", true, intp(11), "")},
	}
	for _, records := range cases {
		_, err := ComputeAggregate(records)
		assert.ErrorIs(t, err, ErrNoScoredRecords)
	}
}

// --- Recommendation tests ---

func TestRecommend(t *testing.T) {
	tests := []struct {
		pct  float64
		want Tier
	}{
		{100, TierReady},
		{80.0, TierReady},
		{79.9, TierFine},
		{60.0, TierFine},
		{59.9, TierOkay},
		{40.0, TierOkay},
		{39.9, TierNeedsWork},
		{0, TierNeedsWork},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Recommend(tt.pct), "Recommend(%v)", tt.pct)
	}
}

func TestRecommendationTexts(t *testing.T) {
	assert.Equal(t, "App is fine. Fix Red items and plan improvements for Amber; consider an engineer or consultant for weak areas.", TierFine.Text())
	assert.Contains(t, TierReady.Text(), "Ready for production")
	assert.Contains(t, TierOkay.Text(), "App is okay to run.")
	assert.Contains(t, TierNeedsWork.Text(), "App needs work.")
}

// --- Summary tests ---

func TestComputeSummary(t *testing.T) {
	records := []assessment.Record{
		rec("r", true, intp(2), ""),
		rec("a", true, intp(5), ""),
		rec("o", true, intp(9), ""),
		rec("u", true, nil, ""),
		rec("x", false, intp(1), ""),
		rec("y", false, nil, ""),
	}
	got := ComputeSummary(records)
	assert.Equal(t, Summary{RedCount: 1, AmberCount: 1, OKCount: 1, UnscoredCount: 1, ExcludedCount: 2}, got)
}

func TestInZoneKeepsInputOrderAndSkipsExcluded(t *testing.T) {
	records := []assessment.Record{
		rec("b", true, intp(3), ""),
		rec("x", false, intp(1), ""),
		rec("a", true, intp(1), ""),
	}
	red := InZone(records, ZoneRed)
	require.Len(t, red, 2)
	assert.Equal(t, "b", red[0].QuestionID)
	assert.Equal(t, "a", red[1].QuestionID)

	excluded := Excluded(records)
	require.Len(t, excluded, 1)
	assert.Equal(t, "x", excluded[0].QuestionID)
}

func TestBuild(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.FixedZone("X", 3600))
	r, err := Build([]assessment.Record{
		rec("q1", true, intp(3), "slow"),
		rec("q2", false, nil, "n/a"),
		rec("q3", true, intp(9), ""),
	}, at)
	require.NoError(t, err)
	assert.Equal(t, 60.0, r.Aggregate.Percent)
	assert.Equal(t, TierFine, r.Tier)
	assert.Equal(t, TierFine.Text(), r.Recommendation)
	assert.Equal(t, "2025-03-04 04:06 UTC", r.GeneratedStamp())

	_, err = Build([]assessment.Record{rec("q", false, nil, "")}, at)
	assert.ErrorIs(t, err, ErrNoScoredRecords)
}
