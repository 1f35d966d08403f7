package scoring

import (
	"math"

	"selectra/internal/model"
	"selectra/internal/rubric"
)

const (
	clarityBaseline      = 5.0
	completenessBaseline = 3.0
	confidenceBaseline   = 5.0

	capitalBonus       = 0.5
	lowUniquePenalty   = 2.0
	lowUniqueThreshold = 0.4

	accuracyBonusMatches = 6
	exampleBonus         = 0.5

	fillerPenaltyPerHit = 0.8
	fillerPenaltyCap    = 4.0
	assertiveBonusPer   = 0.5
	assertiveBonusCap   = 2.0
	realWordBonusFloor  = 0.8
	realWordBonus       = 0.5
)

// ScoreAll computes the four dimension scores from one signal set.
func ScoreAll(sig model.Signals) model.DimensionScores {
	return model.DimensionScores{
		Clarity:      ScoreClarity(sig),
		Accuracy:     ScoreAccuracy(sig),
		Completeness: ScoreCompleteness(sig),
		Confidence:   ScoreConfidence(sig),
	}
}

// ScoreClarity measures sentence structure, readability, and coherence.
func ScoreClarity(sig model.Signals) float64 {
	if sig.IsGibberish {
		return round1(math.Min(1.0, sig.RealWordRatio*2))
	}

	score := clarityBaseline
	score += rubric.TierDelta(rubric.ClaritySentenceTiers, sig.SentenceCount)
	score += rubric.RangeDelta(rubric.ClarityWordTiers, sig.WordCount)
	if sig.StartsWithCapital {
		score += capitalBonus
	}
	if sig.UniqueRatio < lowUniqueThreshold {
		score -= lowUniquePenalty
	}
	return clamp10(score)
}

// ScoreAccuracy measures presence of question-relevant terminology.
func ScoreAccuracy(sig model.Signals) float64 {
	if sig.IsGibberish {
		return 0.0
	}

	score := rubric.BandScore(rubric.AccuracyBands, sig.KeywordMatchRatio)
	if len(sig.MatchedKeywords) >= accuracyBonusMatches {
		score = math.Min(10, score+1)
	}
	return clamp10(score)
}

// ScoreCompleteness measures depth, breadth, and use of examples.
func ScoreCompleteness(sig model.Signals) float64 {
	if sig.IsGibberish {
		return 0.0
	}

	score := completenessBaseline
	score += rubric.TierDelta(rubric.CompletenessWordTiers, sig.WordCount)
	score += rubric.TierDelta(rubric.CompletenessSentenceTiers, sig.SentenceCount)
	if sig.HasExamples {
		score += exampleBonus
	}
	return clamp10(score)
}

// ScoreConfidence measures assertiveness and absence of hedging.
func ScoreConfidence(sig model.Signals) float64 {
	if sig.IsGibberish {
		return 0.0
	}

	score := confidenceBaseline
	score += rubric.TierDelta(rubric.ConfidenceWordTiers, sig.WordCount)
	score -= math.Min(float64(sig.FillerCount)*fillerPenaltyPerHit, fillerPenaltyCap)
	score += math.Min(float64(len(sig.AssertiveFound))*assertiveBonusPer, assertiveBonusCap)
	if sig.RealWordRatio >= realWordBonusFloor {
		score += realWordBonus
	}
	return clamp10(score)
}

func clamp10(v float64) float64 {
	return round1(math.Min(10, math.Max(0, v)))
}
