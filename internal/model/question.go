package model

// QuestionSpec is a rubric question. The keyword set drives the
// accuracy dimension; it is immutable for the process lifetime.
type QuestionSpec struct {
	ID       int      `json:"id" bson:"id"`
	Text     string   `json:"text" bson:"text"`
	Category string   `json:"category" bson:"category"`
	Keywords []string `json:"keywords" bson:"keywords"`
}

// QuestionSummary is the client-facing view of a question. Keywords are
// withheld so candidates cannot game the accuracy scorer.
type QuestionSummary struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Summary strips the keyword set from a question.
func (q QuestionSpec) Summary() QuestionSummary {
	return QuestionSummary{ID: q.ID, Text: q.Text, Category: q.Category}
}
