package scoring

import (
	"time"

	"selectra/internal/model"
	"selectra/internal/rubric"
)

// Engine evaluates answers against the rubric. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	extractor *Extractor
}

// NewEngine creates an evaluation engine bound to a rubric.
func NewEngine(r *rubric.Rubric) *Engine {
	return &Engine{extractor: NewExtractor(r)}
}

// Evaluate scores one answer against one question and assembles the
// immutable per-answer result: signals, four dimension scores, and the
// explanation and suggestion for each dimension.
//
// The answer must be non-empty after trimming; the caller validates
// input before invoking the engine.
func (e *Engine) Evaluate(q model.QuestionSpec, answer string) *model.AnswerResult {
	sig := e.extractor.Extract(answer, q)
	scores := ScoreAll(sig)

	explanations := make([]model.Explanation, 0, len(model.Dimensions))
	suggestions := make(map[model.Dimension]model.Suggestion, len(model.Dimensions))
	for _, dim := range model.Dimensions {
		score := scores.Get(dim)
		explanations = append(explanations, Explain(dim, score, sig))
		suggestions[dim] = Suggest(score, dim, sig)
	}

	return &model.AnswerResult{
		QuestionID:   q.ID,
		Question:     q,
		Answer:       answer,
		Scores:       scores,
		Explanations: explanations,
		Suggestions:  suggestions,
		Signals:      sig,
		AnsweredAt:   time.Now(),
	}
}
