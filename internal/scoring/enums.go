package scoring

// Zone is the severity bucket of a single answer.
type Zone string

const (
	ZoneRed   Zone = "Red"
	ZoneAmber Zone = "Amber"
	ZoneOK    Zone = "OK"
	ZoneNA    Zone = "N/A"
)

func (z Zone) Valid() bool {
	switch z {
	case ZoneRed, ZoneAmber, ZoneOK, ZoneNA:
		return true
	}
	return false
}

// Tier is the recommendation band for an aggregate percentage.
type Tier string

const (
	TierReady     Tier = "READY"
	TierFine      Tier = "FINE"
	TierOkay      Tier = "OKAY"
	TierNeedsWork Tier = "NEEDS_WORK"
)

func (t Tier) Valid() bool {
	switch t {
	case TierReady, TierFine, TierOkay, TierNeedsWork:
		return true
	}
	return false
}

// Text returns the advisory sentence printed for the tier. Downstream
// consumers match these strings literally.
func (t Tier) Text() string {
	switch t {
	case TierReady:
		return "Ready for production — you're in great shape. Consider a lightweight review (e.g. security or load test) before scaling."
	case TierFine:
		return "App is fine. Fix Red items and plan improvements for Amber; consider an engineer or consultant for weak areas."
	case TierOkay:
		return "App is okay to run. Address Red items before production; consider hiring an engineer or a consultant to close gaps."
	case TierNeedsWork:
		return "App needs work. Recommend hiring an engineer (or technical co-founder) before production; use the report to prioritise work."
	}
	return ""
}
