package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"selectra/internal/cache"
	"selectra/internal/model"
	"selectra/internal/scoring"
)

const (
	appName = "Selectra"
	tagline = "Where interviews meet insight."
)

// ReportService produces the post-interview scorecard and handles
// session resets.
type ReportService struct {
	sessions cache.SessionStore
	logger   *zap.Logger
}

// NewReportService creates a report service.
func NewReportService(sessions cache.SessionStore, logger *zap.Logger) *ReportService {
	return &ReportService{sessions: sessions, logger: logger}
}

// FinalReport aggregates the session's answers into the full scorecard.
// Fails with model.ErrEmptyInput when the session has no answers.
func (s *ReportService) FinalReport(ctx context.Context, sessionID string, interviewer model.Interviewer) (*model.FinalReport, error) {
	results, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "reading session answers")
	}

	insights, err := scoring.ComputeInsights(results)
	if err != nil {
		return nil, err
	}

	responses := make([]model.ResponseReport, 0, len(results))
	for _, r := range results {
		responses = append(responses, model.ResponseReport{
			QuestionID:   r.QuestionID,
			Category:     r.Question.Category,
			Question:     r.Question.Text,
			Answer:       r.Answer,
			Scores:       r.Scores,
			Explanations: r.Explanations,
			Suggestions:  r.Suggestions,
		})
	}

	s.logger.Info("final report generated",
		zap.String("session_id", sessionID),
		zap.Int("answers", len(results)),
		zap.Float64("overall", insights.Overall),
		zap.String("readiness", insights.Readiness.Label),
	)

	return &model.FinalReport{
		AppName:            appName,
		Tagline:            tagline,
		GeneratedAt:        time.Now(),
		Interviewer:        interviewer,
		OverallScore:       insights.Overall,
		DimensionAverages:  insights.Averages,
		ReadinessIndicator: insights.Readiness,
		InterviewInsights: model.InsightSummary{
			Strengths:           insights.Strengths,
			ImprovementAreas:    insights.Improvements,
			ActionableNextSteps: insights.NextSteps,
		},
		Responses: responses,
	}, nil
}

// Reset clears the session's answer sequence.
func (s *ReportService) Reset(ctx context.Context, sessionID string) error {
	if err := s.sessions.Reset(ctx, sessionID); err != nil {
		return errors.Wrap(err, "resetting session")
	}

	s.logger.Info("session reset", zap.String("session_id", sessionID))
	return nil
}
