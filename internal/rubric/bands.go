package rubric

import "selectra/internal/model"

// ScoreBand maps a lower bound on a ratio to a fixed score. Tables are
// ordered highest bound first; lookup returns the first band whose Min
// the value reaches.
type ScoreBand struct {
	Min   float64
	Score float64
}

// BandScore resolves a value against an ordered band table. The last
// band is expected to have Min 0 and acts as the catch-all.
func BandScore(bands []ScoreBand, v float64) float64 {
	for _, b := range bands {
		if v >= b.Min {
			return b.Score
		}
	}
	return 0
}

// CountTier maps a lower bound on a count to a score delta. Ordered
// highest bound first; the last tier (Min 0) is the catch-all.
type CountTier struct {
	Min   int
	Delta float64
}

// TierDelta resolves a count against an ordered tier table.
func TierDelta(tiers []CountTier, n int) float64 {
	for _, t := range tiers {
		if n >= t.Min {
			return t.Delta
		}
	}
	return 0
}

// RangeTier maps an inclusive count range to a score delta. Max 0 means
// unbounded above.
type RangeTier struct {
	Min   int
	Max   int
	Delta float64
}

// RangeDelta resolves a count against an ordered range table.
func RangeDelta(tiers []RangeTier, n int) float64 {
	for _, t := range tiers {
		if n >= t.Min && (t.Max == 0 || n <= t.Max) {
			return t.Delta
		}
	}
	return 0
}

// AccuracyBands converts the keyword match ratio to the accuracy
// baseline. The breakpoints are non-linear and rubric-fixed.
var AccuracyBands = []ScoreBand{
	{Min: 0.5, Score: 9},
	{Min: 0.35, Score: 7.5},
	{Min: 0.25, Score: 6},
	{Min: 0.15, Score: 4.5},
	{Min: 0.05, Score: 3},
	{Min: 0, Score: 1.5},
}

// ClaritySentenceTiers reward multi-sentence structure.
var ClaritySentenceTiers = []CountTier{
	{Min: 3, Delta: 2},
	{Min: 2, Delta: 1},
	{Min: 0, Delta: 0},
}

// ClarityWordTiers reward answers in a readable length range.
var ClarityWordTiers = []RangeTier{
	{Min: 30, Max: 200, Delta: 2},
	{Min: 15, Max: 0, Delta: 1},
	{Min: 0, Max: 0, Delta: -2},
}

// CompletenessWordTiers reward answer depth by length.
var CompletenessWordTiers = []CountTier{
	{Min: 80, Delta: 3},
	{Min: 50, Delta: 2.5},
	{Min: 30, Delta: 1.5},
	{Min: 15, Delta: 0.5},
	{Min: 0, Delta: -1},
}

// CompletenessSentenceTiers reward sentence variety.
var CompletenessSentenceTiers = []CountTier{
	{Min: 5, Delta: 2.5},
	{Min: 3, Delta: 1.5},
	{Min: 2, Delta: 0.5},
	{Min: 0, Delta: 0},
}

// ConfidenceWordTiers reward commitment to a full answer.
var ConfidenceWordTiers = []CountTier{
	{Min: 40, Delta: 2},
	{Min: 20, Delta: 1.5},
	{Min: 10, Delta: 0.5},
	{Min: 0, Delta: -2},
}

// SuggestionTier maps an inclusive upper score bound to an advice level
// and its icon tag.
type SuggestionTier struct {
	Max   float64
	Level model.SuggestionLevel
	Icon  string
}

// SuggestionTiers buckets a dimension score into an advice tier: low is
// score<=3, medium is score<=6, high is everything above.
var SuggestionTiers = []SuggestionTier{
	{Max: 3, Level: model.SuggestionLow, Icon: "warning"},
	{Max: 6, Level: model.SuggestionMedium, Icon: "tip"},
	{Max: 10, Level: model.SuggestionHigh, Icon: "check"},
}

// SuggestionTierFor resolves a score to its advice tier. Scores above
// the last bound fall into the last tier.
func SuggestionTierFor(score float64) SuggestionTier {
	for _, t := range SuggestionTiers {
		if score <= t.Max {
			return t
		}
	}
	return SuggestionTiers[len(SuggestionTiers)-1]
}

// ReadinessTier maps a lower bound on the overall average to a
// readiness indicator.
type ReadinessTier struct {
	Min       float64
	Indicator model.Readiness
}

// ReadinessTiers is ordered highest bound first.
var ReadinessTiers = []ReadinessTier{
	{
		Min: 7.5,
		Indicator: model.Readiness{
			Label:       "Strong Candidate",
			Level:       "high",
			Description: "Demonstrates excellent interview skills across all dimensions.",
			ClassName:   "readiness-high",
		},
	},
	{
		Min: 5,
		Indicator: model.Readiness{
			Label:       "Interview Ready",
			Level:       "medium",
			Description: "Solid performance with room for targeted improvement.",
			ClassName:   "readiness-medium",
		},
	},
	{
		Min: 0,
		Indicator: model.Readiness{
			Label:       "Needs Preparation",
			Level:       "low",
			Description: "Additional practice recommended before proceeding to interviews.",
			ClassName:   "readiness-low",
		},
	},
}

// ReadinessFor resolves an overall average to its readiness indicator.
func ReadinessFor(overall float64) model.Readiness {
	for _, t := range ReadinessTiers {
		if overall >= t.Min {
			return t.Indicator
		}
	}
	return ReadinessTiers[len(ReadinessTiers)-1].Indicator
}
