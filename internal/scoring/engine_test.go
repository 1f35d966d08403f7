package scoring

import (
	"testing"

	"selectra/internal/model"
	"selectra/internal/rubric"
)

// A deliberately strong answer to the teamwork question: ~90 words,
// five sentences, an example phrase, assertive language, and most of
// the question's keywords.
const strongTeamworkAnswer = "I have worked in a team environment for several years, and I believe communication is the foundation of every success. " +
	"For example, our agile process used scrum ceremonies where the whole team would collaborate on sprint planning during each meeting. " +
	"We shared responsibility for the outcome and gave each other honest feedback in every code review. " +
	"When a deadline was at risk, we worked together to rebalance the workload and support each other. " +
	"I successfully led that effort, and the conflict resolution skills I developed made the team stronger."

func teamworkQuestion() model.QuestionSpec {
	for _, q := range rubric.DefaultQuestions() {
		if q.Category == "Teamwork" {
			return q
		}
	}
	panic("teamwork question missing from default bank")
}

func TestEngineEvaluateStrongAnswer(t *testing.T) {
	engine := NewEngine(rubric.Default())
	q := teamworkQuestion()

	result := engine.Evaluate(q, strongTeamworkAnswer)

	if result.QuestionID != q.ID {
		t.Fatalf("question id = %d, want %d", result.QuestionID, q.ID)
	}
	if result.Signals.IsGibberish {
		t.Fatal("strong answer flagged as gibberish")
	}
	if result.Signals.WordCount < 80 {
		t.Fatalf("expected a long answer, got %d words", result.Signals.WordCount)
	}
	if result.Signals.SentenceCount != 5 {
		t.Fatalf("expected 5 sentences, got %d", result.Signals.SentenceCount)
	}
	if !result.Signals.HasExamples {
		t.Fatal("expected example phrase detection")
	}

	if result.Scores.Accuracy < 9 {
		t.Errorf("accuracy = %v, want >= 9", result.Scores.Accuracy)
	}
	if result.Scores.Completeness < 8 {
		t.Errorf("completeness = %v, want >= 8", result.Scores.Completeness)
	}
	if result.Scores.Clarity < 7 {
		t.Errorf("clarity = %v, want >= 7", result.Scores.Clarity)
	}
	if result.Scores.Confidence < 7 {
		t.Errorf("confidence = %v, want >= 7", result.Scores.Confidence)
	}

	if len(result.Explanations) != len(model.Dimensions) {
		t.Fatalf("expected %d explanations, got %d", len(model.Dimensions), len(result.Explanations))
	}
	for i, dim := range model.Dimensions {
		if result.Explanations[i].Dimension != dim.Label() {
			t.Errorf("explanation[%d] = %q, want %q", i, result.Explanations[i].Dimension, dim.Label())
		}
	}
	if len(result.Suggestions) != len(model.Dimensions) {
		t.Fatalf("expected %d suggestions, got %d", len(model.Dimensions), len(result.Suggestions))
	}
	if result.AnsweredAt.IsZero() {
		t.Fatal("expected answered timestamp")
	}
}

func TestEngineEvaluateGibberishAnswer(t *testing.T) {
	engine := NewEngine(rubric.Default())

	result := engine.Evaluate(teamworkQuestion(), "xzcv qwrt bnmp")

	if !result.Signals.IsGibberish {
		t.Fatal("expected gibberish classification")
	}
	if result.Scores.Accuracy != 0 || result.Scores.Completeness != 0 || result.Scores.Confidence != 0 {
		t.Fatalf("expected zeroed scores, got %+v", result.Scores)
	}
	for _, dim := range model.Dimensions {
		s, ok := result.Suggestions[dim]
		if !ok {
			t.Fatalf("missing suggestion for %s", dim)
		}
		if dim != model.DimensionClarity && s.Level != model.SuggestionLow {
			t.Errorf("%s suggestion level = %q, want low", dim, s.Level)
		}
	}
}

func TestEngineEvaluateScoresMatchStandaloneScorers(t *testing.T) {
	engine := NewEngine(rubric.Default())
	q := teamworkQuestion()

	result := engine.Evaluate(q, "I collaborate with my team daily. We give feedback in every meeting.")

	if want := ScoreAll(result.Signals); result.Scores != want {
		t.Fatalf("engine scores %+v differ from scorer output %+v", result.Scores, want)
	}
}
