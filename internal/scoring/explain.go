package scoring

import (
	"fmt"
	"math"
	"strings"

	"selectra/internal/model"
)

// Narrative band boundaries shared by all dimensions.
const (
	strongBand   = 7.0
	adequateBand = 4.0
)

// Evidence preview caps keep the detected-signal lists readable.
const (
	keywordPreviewCap   = 5
	fillerPreviewCap    = 4
	assertivePreviewCap = 3
)

type narrative struct {
	strong   string
	adequate string
	weak     string
}

var narratives = map[model.Dimension]narrative{
	model.DimensionClarity: {
		strong:   "Well-structured response with clear sentence organization.",
		adequate: "Adequate structure. Additional sentences would improve readability.",
		weak:     "Response lacks sentence structure or is too brief for clear communication.",
	},
	model.DimensionAccuracy: {
		strong:   "Strong keyword presence indicates solid understanding of the topic.",
		adequate: "Some relevant concepts present but key terms are missing.",
		weak:     "Very few domain-relevant terms detected in the response.",
	},
	model.DimensionCompleteness: {
		strong:   "Thorough response covering multiple facets of the question.",
		adequate: "Covers the basics but could explore the topic further.",
		weak:     "Response is too brief or narrow to be considered complete.",
	},
	model.DimensionConfidence: {
		strong:   "Confident, assertive tone with minimal hesitation.",
		adequate: "Moderate confidence. Some uncertainty phrases dilute the message.",
		weak:     "Response suggests significant uncertainty or excessive hedging.",
	},
}

// Explain produces the evidence trail behind one dimension score.
func Explain(dim model.Dimension, score float64, sig model.Signals) model.Explanation {
	if sig.IsGibberish {
		return model.Explanation{
			Dimension: dim.Label(),
			Score:     score,
			Text:      "Response appears to be nonsensical or gibberish. Please provide a meaningful answer.",
			SignalsDetected: []string{
				"non-meaningful content detected",
				fmt.Sprintf("only %d%% recognizable words", int(math.Round(sig.RealWordRatio*100))),
			},
		}
	}

	var detected []string
	switch dim {
	case model.DimensionClarity:
		detected = append(detected,
			fmt.Sprintf("%d sentence(s) detected", sig.SentenceCount),
			fmt.Sprintf("%d words total", sig.WordCount),
		)
		if sig.StartsWithCapital {
			detected = append(detected, "proper capitalization")
		}
		if sig.UniqueRatio < lowUniqueThreshold {
			detected = append(detected, "high word repetition detected")
		} else if sig.UniqueRatio > 0.7 {
			detected = append(detected, "diverse vocabulary")
		}

	case model.DimensionAccuracy:
		detected = append(detected,
			fmt.Sprintf("%d of %d keywords matched", len(sig.MatchedKeywords), sig.TotalKeywords),
		)
		if len(sig.MatchedKeywords) > 0 {
			preview := strings.Join(capList(sig.MatchedKeywords, keywordPreviewCap), ", ")
			if len(sig.MatchedKeywords) > keywordPreviewCap {
				preview += "..."
			}
			detected = append(detected, "Found: "+preview)
		}

	case model.DimensionCompleteness:
		detected = append(detected,
			fmt.Sprintf("%d words total", sig.WordCount),
			fmt.Sprintf("%d sentence(s)", sig.SentenceCount),
		)
		if sig.HasExamples {
			detected = append(detected, "includes concrete examples")
		} else {
			detected = append(detected, "no specific examples detected")
		}

	case model.DimensionConfidence:
		if sig.FillerCount == 0 {
			detected = append(detected, "no filler/hesitation words")
		} else {
			fillers := strings.Join(capList(sig.FillerWordsFound, fillerPreviewCap), ", ")
			detected = append(detected, fmt.Sprintf("%d filler word(s): %s", sig.FillerCount, fillers))
		}
		if len(sig.AssertiveFound) > 0 {
			phrases := strings.Join(capList(sig.AssertiveFound, assertivePreviewCap), ", ")
			detected = append(detected, "assertive phrases: "+phrases)
		} else {
			detected = append(detected, "no assertive phrases detected")
		}
	}

	n := narratives[dim]
	text := n.weak
	switch {
	case score >= strongBand:
		text = n.strong
	case score >= adequateBand:
		text = n.adequate
	}

	return model.Explanation{
		Dimension:       dim.Label(),
		Score:           score,
		Text:            text,
		SignalsDetected: detected,
	}
}

func capList(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
