package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/qaforge/qaforge/internal/export"
)

// handleExport streams a document's Q&A records in the requested format.
// Query parameters: format (json|csv|jsonl), metadata (include extra
// columns/fields), approved_only (drop everything not yet approved).
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := s.store.GetRecords(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to fetch records: "+err.Error(), http.StatusBadGateway)
		return
	}

	opts := export.Options{
		IncludeMetadata: r.URL.Query().Get("metadata") == "true",
		OnlyApproved:    r.URL.Query().Get("approved_only") == "true",
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s-dataset.%s", docID, format))

	if err := export.Write(w, format, records, opts); err != nil {
		// Headers are already out; log and give up on this response.
		s.log.Error("export write failed", "doc_id", docID, "error", err)
	}
}
