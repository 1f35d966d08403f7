package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"selectra/internal/model"
	"selectra/internal/service"
)

// ReportHandler handles final report generation and session resets.
type ReportHandler struct {
	reportSvc *service.ReportService
	logger    *zap.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportSvc *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, logger: logger}
}

// FinalReportRequest is the request body for generating a report.
type FinalReportRequest struct {
	SessionID   string            `json:"sessionId"`
	Interviewer model.Interviewer `json:"interviewer"`
}

// FinalReport handles POST /api/final-report.
func (h *ReportHandler) FinalReport(w http.ResponseWriter, r *http.Request) {
	var req FinalReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.reportSvc.FinalReport(r.Context(), req.SessionID, req.Interviewer)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("generating final report",
				zap.String("session_id", req.SessionID),
				zap.Error(err),
			)
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// ResetRequest is the request body for resetting a session.
type ResetRequest struct {
	SessionID string `json:"sessionId"`
}

// Reset handles POST /api/reset.
func (h *ReportHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.reportSvc.Reset(r.Context(), req.SessionID); err != nil {
		h.logger.Error("resetting session",
			zap.String("session_id", req.SessionID),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Session reset successfully"})
}
