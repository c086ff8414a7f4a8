package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/searchright/talent-tagger/internal/inference"
	"github.com/searchright/talent-tagger/internal/types"
	"github.com/searchright/talent-tagger/internal/vectorstore"
)

// handleInfer decodes and validates the resume payload, runs the pipeline,
// and maps typed failures to status codes: business-rule violations and
// missing embeddings are 400, structural schema violations are 422, and
// everything else (including malformed model output) is an opaque 500.
func (s *Server) handleInfer(w http.ResponseWriter, r *http.Request) {
	var payload types.ResumePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "invalid JSON body")
		return
	}

	// Present-but-empty positions is a business-rule violation, not a
	// schema one; an absent positions field falls through to the validator.
	if payload.Positions != nil && len(payload.Positions) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "positions must contain at least one entry")
		return
	}

	if err := s.validate.Struct(&payload); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	result, err := s.svc.Run(r.Context(), &payload)
	if err != nil {
		s.inferenceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// inferenceError maps pipeline failures to responses. Model internals are
// never exposed to callers; malformed responses are logged with the raw text
// for operator diagnosis.
func (s *Server) inferenceError(w http.ResponseWriter, err error) {
	var valErr *inference.ValidationError
	if errors.As(err, &valErr) {
		s.errorResponse(w, http.StatusBadRequest, valErr.Rule)
		return
	}

	var noEmb *vectorstore.NoEmbeddingError
	if errors.As(err, &noEmb) {
		s.errorResponse(w, http.StatusBadRequest, noEmb.Error())
		return
	}

	var malformed *inference.MalformedResponseError
	if errors.As(err, &malformed) {
		s.log.Error("malformed model response",
			zap.String("raw", malformed.RawText),
			zap.Error(malformed.Cause),
		)
		s.errorResponse(w, http.StatusInternalServerError, "inference failed")
		return
	}

	s.log.Error("inference failed", zap.Error(err))
	s.errorResponse(w, http.StatusInternalServerError, "inference failed")
}

// validationMessage renders the first violated rule from a validator error.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return "invalid payload: field " + first.Namespace() + " failed rule '" + first.Tag() + "'"
	}
	return "invalid payload"
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
