package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"selectra/internal/model"
	"selectra/internal/service"
)

// InterviewHandler handles question listing and answer evaluation.
type InterviewHandler struct {
	evalSvc *service.EvaluationService
	logger  *zap.Logger
}

// NewInterviewHandler creates a new interview handler.
func NewInterviewHandler(evalSvc *service.EvaluationService, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{evalSvc: evalSvc, logger: logger}
}

// Questions handles GET /api/questions.
func (h *InterviewHandler) Questions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.evalSvc.ListQuestions(r.Context())
	if err != nil {
		h.logger.Error("listing questions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"total":     len(questions),
	})
}

// EvaluateRequest is the request body for evaluating an answer.
type EvaluateRequest struct {
	SessionID  string `json:"sessionId"`
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

// Evaluate handles POST /api/evaluate. A missing sessionId mints a
// fresh one so anonymous clients do not share interview state.
func (h *InterviewHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	resp, err := h.evalSvc.Evaluate(r.Context(), req.SessionID, req.QuestionID, req.Answer)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("evaluating answer",
				zap.String("session_id", req.SessionID),
				zap.Int("question_id", req.QuestionID),
				zap.Error(err),
			)
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// statusFor maps caller-input errors to their HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrEmptyAnswer):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrQuestionNotFound), errors.Is(err, model.ErrEmptyInput):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
