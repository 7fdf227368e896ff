package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/normalize"
)

// API error codes returned in the error envelope.
const (
	CodeEmptyDocument  = "EMPTY_DOCUMENT"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternal       = "INTERNAL_ERROR"
)

// ErrorBody is the error payload inside the envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorEnvelope is the JSON shape of every error response.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// errorResponse writes a structured error envelope.
func (s *Server) errorResponse(w http.ResponseWriter, status int, code, message string) {
	s.jsonResponse(w, status, ErrorEnvelope{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message},
	})
}

// classifyError maps a pipeline error to an HTTP status and API code.
func classifyError(err error) (status int, code string) {
	var emptyErr *normalize.EmptyDocumentError
	if errors.As(err, &emptyErr) {
		return http.StatusBadRequest, CodeEmptyDocument
	}
	return http.StatusInternalServerError, CodeInternal
}
