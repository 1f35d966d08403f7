package model

import "time"

// Dimension is one of the four evaluated axes.
type Dimension string

const (
	DimensionClarity      Dimension = "clarity"
	DimensionAccuracy     Dimension = "accuracy"
	DimensionCompleteness Dimension = "completeness"
	DimensionConfidence   Dimension = "confidence"
)

// Dimensions lists all axes in canonical priority order. Sorting and
// tie-breaking throughout the engine follow this order.
var Dimensions = []Dimension{
	DimensionClarity,
	DimensionAccuracy,
	DimensionCompleteness,
	DimensionConfidence,
}

var dimensionLabels = map[Dimension]string{
	DimensionClarity:      "Clarity",
	DimensionAccuracy:     "Technical Accuracy",
	DimensionCompleteness: "Completeness",
	DimensionConfidence:   "Confidence",
}

// Label returns the human-readable name of the dimension.
func (d Dimension) Label() string {
	if l, ok := dimensionLabels[d]; ok {
		return l
	}
	return string(d)
}

// DimensionScores holds one score per dimension, each in [0,10] rounded
// to one decimal.
type DimensionScores struct {
	Clarity      float64 `json:"clarity"`
	Accuracy     float64 `json:"accuracy"`
	Completeness float64 `json:"completeness"`
	Confidence   float64 `json:"confidence"`
}

// Get returns the score for the given dimension.
func (s DimensionScores) Get(d Dimension) float64 {
	switch d {
	case DimensionClarity:
		return s.Clarity
	case DimensionAccuracy:
		return s.Accuracy
	case DimensionCompleteness:
		return s.Completeness
	case DimensionConfidence:
		return s.Confidence
	}
	return 0
}

// Set assigns the score for the given dimension.
func (s *DimensionScores) Set(d Dimension, v float64) {
	switch d {
	case DimensionClarity:
		s.Clarity = v
	case DimensionAccuracy:
		s.Accuracy = v
	case DimensionCompleteness:
		s.Completeness = v
	case DimensionConfidence:
		s.Confidence = v
	}
}

// Explanation is the evidence trail behind a single dimension score.
type Explanation struct {
	Dimension       string   `json:"dimension"`
	Score           float64  `json:"score"`
	Text            string   `json:"text"`
	SignalsDetected []string `json:"signalsDetected"`
}

// SuggestionLevel buckets a score into an advice tier.
type SuggestionLevel string

const (
	SuggestionLow    SuggestionLevel = "low"
	SuggestionMedium SuggestionLevel = "medium"
	SuggestionHigh   SuggestionLevel = "high"
)

// Suggestion is a single piece of tiered, actionable advice.
type Suggestion struct {
	Level     SuggestionLevel `json:"level"`
	Text      string          `json:"text"`
	Icon      string          `json:"icon"`
	Score     float64         `json:"score"`
	Dimension string          `json:"dimension"`
}

// AnswerResult is the immutable record of one evaluated answer. It is
// created once and appended to the session's answer sequence; nothing
// mutates it afterwards.
type AnswerResult struct {
	QuestionID   int                      `json:"questionId"`
	Question     QuestionSpec             `json:"question"`
	Answer       string                   `json:"answer"`
	Scores       DimensionScores          `json:"scores"`
	Explanations []Explanation            `json:"explanations"`
	Suggestions  map[Dimension]Suggestion `json:"suggestions"`
	Signals      Signals                  `json:"signals"`
	AnsweredAt   time.Time                `json:"answeredAt"`
}
