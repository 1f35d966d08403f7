package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"selectra/internal/cache"
	"selectra/internal/model"
	"selectra/internal/repository"
	"selectra/internal/rubric"
	"selectra/internal/scoring"
)

// EvaluationService orchestrates single-answer evaluation: input
// validation, question lookup, engine invocation, session append, and
// the running-average view.
type EvaluationService struct {
	questions repository.QuestionRepo
	sessions  cache.SessionStore
	engine    *scoring.Engine
	logger    *zap.Logger
}

// NewEvaluationService creates an evaluation service.
func NewEvaluationService(
	questions repository.QuestionRepo,
	sessions cache.SessionStore,
	engine *scoring.Engine,
	logger *zap.Logger,
) *EvaluationService {
	return &EvaluationService{
		questions: questions,
		sessions:  sessions,
		engine:    engine,
		logger:    logger,
	}
}

// ListQuestions returns the client-facing question bank.
func (s *EvaluationService) ListQuestions(ctx context.Context) ([]model.QuestionSummary, error) {
	questions, err := s.questions.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading question bank")
	}

	summaries := make([]model.QuestionSummary, 0, len(questions))
	for _, q := range questions {
		summaries = append(summaries, q.Summary())
	}
	return summaries, nil
}

// Evaluate scores one answer, appends the result to the session, and
// returns the scores together with the session's running averages.
//
// Blank answers fail with model.ErrEmptyAnswer before reaching the
// engine; unknown question ids fail with model.ErrQuestionNotFound.
func (s *EvaluationService) Evaluate(ctx context.Context, sessionID string, questionID int, answer string) (*model.EvaluationResponse, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, model.ErrEmptyAnswer
	}

	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, errors.Wrapf(err, "looking up question %d", questionID)
	}
	if question == nil {
		return nil, errors.Wrapf(model.ErrQuestionNotFound, "question %d", questionID)
	}

	result := s.engine.Evaluate(*question, answer)

	if err := s.sessions.Append(ctx, sessionID, result); err != nil {
		return nil, errors.Wrap(err, "storing answer result")
	}

	results, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "reading session answers")
	}
	running := scoring.ComputeRunningAverages(results)

	s.logger.Info("answer evaluated",
		zap.String("session_id", sessionID),
		zap.Int("question_id", questionID),
		zap.Int("word_count", result.Signals.WordCount),
		zap.Bool("gibberish", result.Signals.IsGibberish),
		zap.Float64("overall", running.Overall),
	)

	return &model.EvaluationResponse{
		SessionID:       sessionID,
		QuestionID:      questionID,
		Scores:          result.Scores,
		Explanations:    result.Explanations,
		Suggestions:     result.Suggestions,
		Signals:         result.Signals.Summary(),
		RunningAverages: running,
		Readiness:       rubric.ReadinessFor(running.Overall),
	}, nil
}
