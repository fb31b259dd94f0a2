package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/qaforge/qaforge/internal/dataset"
	"github.com/qaforge/qaforge/internal/store"
)

// updateRecordRequest is the body for PATCH /api/records/{recordID}.
// Omitted fields are left unchanged.
type updateRecordRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Status   *string `json:"status"`
}

// handleUpdateRecord applies a review edit to one record. Approval is derived
// from status; clients cannot set it independently.
func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	var req updateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Question == nil && req.Answer == nil && req.Status == nil {
		jsonError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	upd := store.RecordUpdate{
		Question: req.Question,
		Answer:   req.Answer,
	}

	// An edit to question or answer moves the record into "edited" unless the
	// client sets an explicit status.
	status := dataset.StatusEdited
	if req.Status != nil {
		status = dataset.ReviewStatus(*req.Status)
		if !status.Valid() {
			jsonError(w, fmt.Sprintf("invalid status %q", *req.Status), http.StatusBadRequest)
			return
		}
	}
	if req.Status != nil || req.Question != nil || req.Answer != nil {
		approved := status == dataset.StatusApproved
		upd.Status = &status
		upd.IsApproved = &approved
	}

	if err := s.store.UpdateRecord(r.Context(), recordID, upd); err != nil {
		jsonError(w, "failed to update record: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"updated": recordID,
		"status":  status,
	})
}
