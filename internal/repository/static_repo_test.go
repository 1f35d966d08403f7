package repository

import (
	"context"
	"testing"

	"selectra/internal/model"
	"selectra/internal/rubric"
)

func TestStaticRepoGetAll(t *testing.T) {
	repo := NewStaticQuestionRepo(rubric.DefaultQuestions())

	questions, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
}

func TestStaticRepoGetAllReturnsCopy(t *testing.T) {
	repo := NewStaticQuestionRepo(rubric.DefaultQuestions())
	ctx := context.Background()

	first, _ := repo.GetAll(ctx)
	first[0] = model.QuestionSpec{ID: 99, Text: "tampered"}

	second, _ := repo.GetAll(ctx)
	if second[0].ID == 99 {
		t.Fatal("bank mutated through returned slice")
	}
}

func TestStaticRepoGetByID(t *testing.T) {
	repo := NewStaticQuestionRepo(rubric.DefaultQuestions())
	ctx := context.Background()

	q, err := repo.GetByID(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if q == nil || q.ID != 3 {
		t.Fatalf("unexpected question %+v", q)
	}

	q, err = repo.GetByID(ctx, 99)
	if err != nil {
		t.Fatal(err)
	}
	if q != nil {
		t.Fatalf("expected nil for unknown id, got %+v", q)
	}
}
