package model

import "github.com/pkg/errors"

// Caller-input errors. The engine has no transient failure modes: every
// error below means the request was wrong, not that a retry would help.
var (
	// ErrEmptyAnswer is returned when the answer text is empty after
	// trimming. Rejected before signal extraction.
	ErrEmptyAnswer = errors.New("answer cannot be empty")

	// ErrQuestionNotFound is returned for an unknown question id.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrEmptyInput is returned when insights are requested over a
	// session with no evaluated answers.
	ErrEmptyInput = errors.New("no interview data found for this session")
)
