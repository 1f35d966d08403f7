package model

// Readiness is the coarse three-level verdict over an interview.
type Readiness struct {
	Label       string `json:"label"`
	Level       string `json:"level"`
	Description string `json:"description"`
	ClassName   string `json:"className"`
}

// RunningAverages are the per-dimension averages plus overall mean
// across the answers evaluated so far in a session.
type RunningAverages struct {
	Clarity      float64 `json:"clarity"`
	Accuracy     float64 `json:"accuracy"`
	Completeness float64 `json:"completeness"`
	Confidence   float64 `json:"confidence"`
	Overall      float64 `json:"overall"`
}

// DimensionInsight is a ranked dimension with a canned note, used for
// both strengths and improvement areas.
type DimensionInsight struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Note  string  `json:"note"`
}

// InterviewInsights is the interview-level summary derived from the
// ordered answer sequence. It is computed on demand and never stored.
type InterviewInsights struct {
	Overall      float64            `json:"overall"`
	Averages     DimensionScores    `json:"averages"`
	Strengths    []DimensionInsight `json:"strengths"`
	Improvements []DimensionInsight `json:"improvements"`
	NextSteps    []string           `json:"nextSteps"`
	Readiness    Readiness          `json:"readiness"`
}
