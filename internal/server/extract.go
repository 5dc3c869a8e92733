package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
)

type extractRequest struct {
	Prompt string `json:"prompt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleExtract turns a free-text prompt into a structured invoice record.
// Internal provider errors are logged but never surfaced verbatim.
func (s *Service) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "please enter a description for your invoice"})
		return
	}

	rec, err := s.extractor.Extract(r.Context(), prompt)
	if err != nil {
		var exErr *invoice.ExtractionError
		if errors.As(err, &exErr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: exErr.Error()})
			return
		}
		s.logger.Error("extract.unexpected_error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
