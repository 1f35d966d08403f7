package model

import "time"

// Interviewer identifies who ran the interview, echoed into the report.
type Interviewer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EvaluationResponse is the wire shape returned for a single evaluated
// answer, including the session's running averages.
type EvaluationResponse struct {
	SessionID       string                   `json:"sessionId"`
	QuestionID      int                      `json:"questionId"`
	Scores          DimensionScores          `json:"scores"`
	Explanations    []Explanation            `json:"explanations"`
	Suggestions     map[Dimension]Suggestion `json:"suggestions"`
	Signals         SignalSummary            `json:"signals"`
	RunningAverages RunningAverages          `json:"runningAverages"`
	Readiness       Readiness                `json:"readiness"`
}

// ResponseReport is one answered question as it appears in the final
// scorecard.
type ResponseReport struct {
	QuestionID   int                      `json:"questionId"`
	Category     string                   `json:"category"`
	Question     string                   `json:"question"`
	Answer       string                   `json:"answer"`
	Scores       DimensionScores          `json:"scores"`
	Explanations []Explanation            `json:"explanations"`
	Suggestions  map[Dimension]Suggestion `json:"suggestions"`
}

// InsightSummary groups the interview-level findings for the report.
type InsightSummary struct {
	Strengths           []DimensionInsight `json:"strengths"`
	ImprovementAreas    []DimensionInsight `json:"improvementAreas"`
	ActionableNextSteps []string           `json:"actionableNextSteps"`
}

// FinalReport is the full post-interview scorecard.
type FinalReport struct {
	AppName            string          `json:"appName"`
	Tagline            string          `json:"tagline"`
	GeneratedAt        time.Time       `json:"generatedAt"`
	Interviewer        Interviewer     `json:"interviewer"`
	OverallScore       float64         `json:"overallScore"`
	DimensionAverages  DimensionScores `json:"dimensionAverages"`
	ReadinessIndicator Readiness       `json:"readinessIndicator"`
	InterviewInsights  InsightSummary  `json:"interviewInsights"`
	Responses          []ResponseReport `json:"responses"`
}
