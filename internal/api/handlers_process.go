package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// processRequest is the body for POST /api/process.
type processRequest struct {
	DocumentID      string `json:"documentId"`
	DocumentName    string `json:"documentName"`
	DocumentContent string `json:"documentContent"`
}

// handleProcess runs the pipeline synchronously over pre-extracted text and
// returns the generated records in the response.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.DocumentID == "" {
		jsonError(w, "documentId is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.DocumentContent) == "" {
		jsonError(w, "documentContent is required", http.StatusBadRequest)
		return
	}

	result, err := s.processor.Process(r.Context(), req.DocumentID, req.DocumentName, req.DocumentContent)
	if err != nil {
		s.log.Error("processing failed", "doc_id", req.DocumentID, "error", err)
		jsonError(w, "Failed to process document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success":   true,
		"chunks":    result.ChunkCount,
		"questions": result.RecordCount,
		"results":   result.Records,
	})
}
