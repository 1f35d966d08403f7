package repository

import (
	"context"

	"selectra/internal/model"
)

type staticQuestionRepo struct {
	questions []model.QuestionSpec
	byID      map[int]model.QuestionSpec
}

// NewStaticQuestionRepo creates an in-memory question bank over a fixed
// question list. This is the default source.
func NewStaticQuestionRepo(questions []model.QuestionSpec) QuestionRepo {
	byID := make(map[int]model.QuestionSpec, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &staticQuestionRepo{questions: questions, byID: byID}
}

func (r *staticQuestionRepo) GetAll(_ context.Context) ([]model.QuestionSpec, error) {
	out := make([]model.QuestionSpec, len(r.questions))
	copy(out, r.questions)
	return out, nil
}

func (r *staticQuestionRepo) GetByID(_ context.Context, id int) (*model.QuestionSpec, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}
