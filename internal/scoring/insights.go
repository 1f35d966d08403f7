package scoring

import (
	"fmt"
	"math"
	"sort"

	"selectra/internal/model"
	"selectra/internal/rubric"
)

// Insight selection thresholds.
const (
	strengthFloor       = 5.0
	improvementCeiling  = 8.0
	strongNoteBand      = 7.0
	weakNoteBand        = 4.0
	shortAnswerAvgWords = 40
)

type insightNote struct {
	strong string
	weak   string
}

var strengthNotes = map[model.Dimension]insightNote{
	model.DimensionClarity: {
		strong: "Responses are well-structured and easy to follow.",
		weak:   "Answers show reasonable clarity in communication.",
	},
	model.DimensionAccuracy: {
		strong: "Demonstrates strong domain knowledge with relevant terminology.",
		weak:   "Shows adequate understanding of technical concepts.",
	},
	model.DimensionCompleteness: {
		strong: "Provides thorough, multi-faceted responses with supporting detail.",
		weak:   "Covers the essential points in each answer.",
	},
	model.DimensionConfidence: {
		strong: "Communicates with conviction and assertive, professional language.",
		weak:   "Maintains a generally confident tone throughout.",
	},
}

var improvementNotes = map[model.Dimension]insightNote{
	model.DimensionClarity: {
		weak:   "Needs significantly more structure - practice organizing thoughts before responding.",
		strong: "Could benefit from more polished sentence transitions and flow.",
	},
	model.DimensionAccuracy: {
		weak:   "Technical vocabulary is lacking - review core concepts for the target role.",
		strong: "Incorporating more specific terms and concepts would strengthen responses.",
	},
	model.DimensionCompleteness: {
		weak:   "Answers are too brief - practice expanding with examples and multiple perspectives.",
		strong: "Adding concrete examples and covering more angles would improve depth.",
	},
	model.DimensionConfidence: {
		weak:   "Excessive use of hedging language - practice direct, assertive phrasing.",
		strong: "Minor hesitation phrases can be eliminated for a more polished delivery.",
	},
}

var remediationSteps = map[model.Dimension]string{
	model.DimensionClarity:      "Practice the STAR method (Situation, Task, Action, Result) to structure answers more clearly.",
	model.DimensionAccuracy:     "Review key technical concepts for your target role and practice using specific terminology.",
	model.DimensionCompleteness: "Before answering, mentally outline 2-3 points to cover, then expand each with detail.",
	model.DimensionConfidence:   "Record yourself answering practice questions and identify filler words to eliminate.",
}

var reinforcementSteps = map[model.Dimension]string{
	model.DimensionClarity:      "Your communication clarity is a strength - leverage it in presentations and demos.",
	model.DimensionAccuracy:     "Your technical knowledge is solid - consider deepening into specialized areas.",
	model.DimensionCompleteness: "Your thoroughness stands out - channel this skill into technical documentation.",
	model.DimensionConfidence:   "Your confident delivery is impressive - consider mentoring peers on interview prep.",
}

// ComputeRunningAverages returns the per-dimension averages and overall
// mean across the results so far. Zero value for an empty sequence.
func ComputeRunningAverages(results []model.AnswerResult) model.RunningAverages {
	if len(results) == 0 {
		return model.RunningAverages{}
	}
	avg := averageScores(results)
	return model.RunningAverages{
		Clarity:      avg.Clarity,
		Accuracy:     avg.Accuracy,
		Completeness: avg.Completeness,
		Confidence:   avg.Confidence,
		Overall:      overallOf(avg),
	}
}

// ComputeInsights folds the ordered answer sequence into the interview
// level summary. Returns ErrEmptyInput for an empty sequence.
//
// Ties in dimension ranking resolve by the fixed priority order
// clarity > accuracy > completeness > confidence: ranking is a stable
// sort over that order, and weakest/strongest selection keeps the first
// dimension in priority order among equals.
func ComputeInsights(results []model.AnswerResult) (*model.InterviewInsights, error) {
	if len(results) == 0 {
		return nil, model.ErrEmptyInput
	}

	avg := averageScores(results)
	overall := overallOf(avg)

	ranked := append([]model.Dimension{}, model.Dimensions...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return avg.Get(ranked[i]) > avg.Get(ranked[j])
	})

	strengths := []model.DimensionInsight{}
	for _, dim := range ranked[:2] {
		score := avg.Get(dim)
		if score < strengthFloor {
			continue
		}
		note := strengthNotes[dim].weak
		if score >= strongNoteBand {
			note = strengthNotes[dim].strong
		}
		strengths = append(strengths, model.DimensionInsight{
			Name:  dim.Label(),
			Score: score,
			Note:  note,
		})
	}

	improvements := []model.DimensionInsight{}
	for _, dim := range ranked[len(ranked)-2:] {
		score := avg.Get(dim)
		if score >= improvementCeiling {
			continue
		}
		note := improvementNotes[dim].strong
		if score < weakNoteBand {
			note = improvementNotes[dim].weak
		}
		improvements = append(improvements, model.DimensionInsight{
			Name:  dim.Label(),
			Score: score,
			Note:  note,
		})
	}

	return &model.InterviewInsights{
		Overall:      overall,
		Averages:     avg,
		Strengths:    strengths,
		Improvements: improvements,
		NextSteps:    nextSteps(avg, results),
		Readiness:    rubric.ReadinessFor(overall),
	}, nil
}

// nextSteps returns exactly three ordered steps: remediate the weakest
// dimension, a length/example observation, reinforce the strongest.
func nextSteps(avg model.DimensionScores, results []model.AnswerResult) []string {
	weakest, strongest := model.Dimensions[0], model.Dimensions[0]
	for _, dim := range model.Dimensions[1:] {
		if avg.Get(dim) < avg.Get(weakest) {
			weakest = dim
		}
		if avg.Get(dim) > avg.Get(strongest) {
			strongest = dim
		}
	}

	totalWords := 0
	hasAnyExamples := false
	for _, r := range results {
		totalWords += r.Signals.WordCount
		hasAnyExamples = hasAnyExamples || r.Signals.HasExamples
	}
	avgWords := int(math.Round(float64(totalWords) / float64(len(results))))

	var observation string
	switch {
	case avgWords < shortAnswerAvgWords:
		observation = fmt.Sprintf(
			"Your average response length is %d words. Aim for 50-100 words per answer for more thorough coverage.",
			avgWords)
	case !hasAnyExamples:
		observation = "None of your answers included specific examples. Practice incorporating real experiences to make responses more compelling."
	default:
		observation = "Continue preparing with mock interviews to build consistency across all dimensions."
	}

	return []string{
		remediationSteps[weakest],
		observation,
		reinforcementSteps[strongest],
	}
}

func averageScores(results []model.AnswerResult) model.DimensionScores {
	var avg model.DimensionScores
	n := float64(len(results))
	for _, dim := range model.Dimensions {
		total := 0.0
		for _, r := range results {
			total += r.Scores.Get(dim)
		}
		avg.Set(dim, round1(total/n))
	}
	return avg
}

func overallOf(avg model.DimensionScores) float64 {
	return round1((avg.Clarity + avg.Accuracy + avg.Completeness + avg.Confidence) / 4)
}
