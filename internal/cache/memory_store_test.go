package cache

import (
	"context"
	"testing"

	"selectra/internal/model"
)

func TestMemoryStoreAppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	for _, id := range []int{1, 2, 3} {
		if err := store.Append(ctx, "s1", &model.AnswerResult{QuestionID: id}); err != nil {
			t.Fatal(err)
		}
	}

	results, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.QuestionID != i+1 {
			t.Fatalf("result[%d].QuestionID = %d, want %d", i, r.QuestionID, i+1)
		}
	}
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	if err := store.Append(ctx, "s1", &model.AnswerResult{QuestionID: 1}); err != nil {
		t.Fatal(err)
	}

	results, err := store.Get(ctx, "s2")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty sequence for unknown session, got %d", len(results))
	}
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	if err := store.Append(ctx, "s1", &model.AnswerResult{QuestionID: 1}); err != nil {
		t.Fatal(err)
	}

	first, _ := store.Get(ctx, "s1")
	first[0].QuestionID = 99

	second, _ := store.Get(ctx, "s1")
	if second[0].QuestionID != 1 {
		t.Fatalf("stored result mutated through returned slice: %d", second[0].QuestionID)
	}
}

func TestMemoryStoreReset(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	if err := store.Append(ctx, "s1", &model.AnswerResult{QuestionID: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.Reset(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	results, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty sequence after reset, got %d", len(results))
	}

	// Resetting an already-empty session is a no-op.
	if err := store.Reset(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
}
