package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeResponse wraps a successful analysis in the response envelope.
type AnalyzeResponse struct {
	Success bool                  `json:"success"`
	Result  *types.AnalysisResult `json:"result"`
}

// decodeInput reads and decodes the analyze request body, enforcing the
// configured size cap.
func (s *Server) decodeInput(w http.ResponseWriter, r *http.Request) (types.AnalysisInput, bool) {
	var in types.AnalysisInput
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.errorResponse(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid request body: "+err.Error())
		return in, false
	}
	return in, true
}

// handleAnalyze runs a full analysis and returns the assembled result
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodeInput(w, r)
	if !ok {
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), in)
	if err != nil {
		status, code := classifyError(err)
		if status == http.StatusInternalServerError {
			log.Printf("Analysis failed: %v", err)
		}
		s.errorResponse(w, status, code, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{Success: true, Result: result})
}

// handleAnalyzeStream runs an analysis and streams stage progress via SSE.
// The final result arrives in the terminating "complete" event.
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodeInput(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}

	// The streaming coordinator shares configuration with the base one
	// but forwards progress events to this connection.
	streaming := s.analyzer.WithProgress(func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("stage", event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	})

	result, err := streaming.Analyze(r.Context(), in)
	if err != nil {
		_, code := classifyError(err)
		sse.WriteError(code, err.Error())
		return
	}

	sse.WriteComplete(AnalyzeResponse{Success: true, Result: result})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
