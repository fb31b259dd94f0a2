// Package dataset assembles Q&A records from document chunks and carries
// their review state through the curation workflow.
package dataset

import (
	"fmt"
)

// ReviewStatus tracks where a record sits in the curation workflow.
type ReviewStatus string

const (
	StatusGenerated ReviewStatus = "generated"
	StatusEdited    ReviewStatus = "edited"
	StatusApproved  ReviewStatus = "approved"
	StatusRejected  ReviewStatus = "rejected"
	// StatusPending is accepted on inbound data for compatibility with
	// older exports; new records never start in this state.
	StatusPending ReviewStatus = "pending"
)

// Valid reports whether s is a known review status.
func (s ReviewStatus) Valid() bool {
	switch s {
	case StatusGenerated, StatusEdited, StatusApproved, StatusRejected, StatusPending:
		return true
	}
	return false
}

// Record is one generated question-answer pair tied to a specific chunk.
//
// Status is the single source of truth for review state; IsApproved is kept
// on the wire for downstream compatibility and is always derived from Status
// by the transition methods.
type Record struct {
	ID           string       `json:"id"`
	ChunkID      int          `json:"chunkId"`
	ChunkText    string       `json:"chunkText"`
	Question     string       `json:"question"`
	Answer       string       `json:"answer"`
	Status       ReviewStatus `json:"status"`
	IsApproved   bool         `json:"isApproved"`
	DocumentName string       `json:"documentName,omitempty"`
}

// NewRecord assembles a record for the (chunk, question) pair. The id is
// documentID-chunkIndex-seq where seq is the 1-based running record count
// across the whole document. Every record starts unreviewed.
func NewRecord(documentID string, chunkIndex, seq int, chunkText, question, answer string) Record {
	return Record{
		ID:         fmt.Sprintf("%s-%d-%d", documentID, chunkIndex, seq),
		ChunkID:    chunkIndex,
		ChunkText:  chunkText,
		Question:   question,
		Answer:     answer,
		Status:     StatusGenerated,
		IsApproved: false,
	}
}

// SetStatus moves the record to the given review state, keeping the derived
// IsApproved flag consistent.
func (r *Record) SetStatus(s ReviewStatus) error {
	if !s.Valid() {
		return fmt.Errorf("unknown review status %q", s)
	}
	r.Status = s
	r.IsApproved = s == StatusApproved
	return nil
}

// Edit replaces the question and/or answer text and marks the record edited.
// Empty arguments leave the corresponding field unchanged.
func (r *Record) Edit(question, answer string) {
	if question != "" {
		r.Question = question
	}
	if answer != "" {
		r.Answer = answer
	}
	r.Status = StatusEdited
	r.IsApproved = false
}

// Approve marks the record approved.
func (r *Record) Approve() {
	r.Status = StatusApproved
	r.IsApproved = true
}

// Reject marks the record rejected.
func (r *Record) Reject() {
	r.Status = StatusRejected
	r.IsApproved = false
}
