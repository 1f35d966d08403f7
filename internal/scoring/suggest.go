package scoring

import (
	"fmt"
	"strings"

	"selectra/internal/model"
	"selectra/internal/rubric"
)

// Suggest produces tiered, actionable advice for one dimension score.
// The tier is a pure function of the score; the advice text is refined
// by sub-conditions on the signals.
func Suggest(score float64, dim model.Dimension, sig model.Signals) model.Suggestion {
	tier := rubric.SuggestionTierFor(score)

	var text string
	switch tier.Level {
	case model.SuggestionLow:
		text = suggestLow(dim, sig)
	case model.SuggestionMedium:
		text = suggestMedium(dim, sig)
	default:
		text = suggestHigh(dim, sig)
	}

	return model.Suggestion{
		Level:     tier.Level,
		Text:      text,
		Icon:      tier.Icon,
		Score:     score,
		Dimension: dim.Label(),
	}
}

func suggestLow(dim model.Dimension, sig model.Signals) string {
	switch dim {
	case model.DimensionClarity:
		if sig.WordCount < 15 {
			return "Your response is very brief. Aim for at least 3-4 complete sentences with a clear beginning, middle, and conclusion."
		}
		if sig.UniqueRatio < lowUniqueThreshold {
			return "There is noticeable word repetition. Vary your vocabulary and structure thoughts into distinct sentences."
		}
		return "Improve clarity by organizing your answer into clear sentences. Start with your main point, support with details, then summarize."
	case model.DimensionAccuracy:
		if len(sig.MatchedKeywords) == 0 {
			return "Your answer did not include key technical terms. Review the topic and incorporate specific terminology and concepts."
		}
		return fmt.Sprintf("Only %d relevant term(s) detected. Use more domain-specific vocabulary and reference concrete concepts.", len(sig.MatchedKeywords))
	case model.DimensionCompleteness:
		if sig.WordCount < 15 {
			return "Your response is too brief. Expand with at least 3-5 sentences covering different aspects of the question."
		}
		return "Your answer covers limited ground. Address multiple facets and include specific examples to demonstrate depth."
	}
	// confidence
	if sig.FillerCount > 3 {
		fillers := strings.Join(capList(sig.FillerWordsFound, 3), "', '")
		return fmt.Sprintf("Multiple hesitation phrases detected ('%s'). Practice delivering answers with direct, assertive language.", fillers)
	}
	return "The response conveys uncertainty. Use definitive statements like 'I achieved...' or 'I built...' to project confidence."
}

func suggestMedium(dim model.Dimension, sig model.Signals) string {
	switch dim {
	case model.DimensionClarity:
		if sig.SentenceCount < 3 {
			return "Your answer is reasonably clear but could benefit from additional sentences to fully develop your point."
		}
		return "Good clarity foundation. Ensure each sentence transitions smoothly to the next for a cohesive narrative."
	case model.DimensionAccuracy:
		return fmt.Sprintf("You referenced %d of %d expected concepts. Mentioning more domain-specific terms would elevate accuracy.", len(sig.MatchedKeywords), sig.TotalKeywords)
	case model.DimensionCompleteness:
		if !sig.HasExamples {
			return "Solid answer overall. Adding a concrete example or use case would make it more complete and convincing."
		}
		return "Good detail level. Consider expanding on additional angles or trade-offs to demonstrate comprehensive understanding."
	}
	// confidence
	if sig.FillerCount > 0 {
		return fmt.Sprintf("Your answer is confident overall, but reducing hesitation phrases like '%s' would strengthen delivery.", sig.FillerWordsFound[0])
	}
	return "Confident tone detected. Adding a personal achievement statement would further reinforce self-assurance."
}

func suggestHigh(dim model.Dimension, sig model.Signals) string {
	switch dim {
	case model.DimensionClarity:
		return "Excellent clarity! Well-structured and easy to follow. To reach the next level, consider using transition phrases between ideas."
	case model.DimensionAccuracy:
		return fmt.Sprintf("Strong technical accuracy with %d relevant concepts. For even greater impact, relate concepts to real-world applications.", len(sig.MatchedKeywords))
	case model.DimensionCompleteness:
		if sig.HasExamples {
			return "Very thorough response with examples included. Exceptional completeness - maintain this standard across all answers."
		}
		return "Comprehensive answer. Adding a brief example would make it truly outstanding."
	}
	// confidence
	if len(sig.AssertiveFound) > 0 {
		return "Highly confident delivery with assertive language. This projects professionalism - keep this approach."
	}
	return "Strong confident tone. Consider adding quantified achievements to amplify impact."
}
