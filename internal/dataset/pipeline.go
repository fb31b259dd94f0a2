package dataset

import (
	"context"
	"errors"
	"log/slog"

	"github.com/qaforge/qaforge/internal/chunker"
	"github.com/qaforge/qaforge/internal/generate"
)

// Processor drives the chunk -> questions -> answers -> records pipeline for
// one document. Chunks are processed strictly in order and questions within a
// chunk strictly in order, so record sequence numbers are deterministic.
type Processor struct {
	qa          *generate.QA
	log         *slog.Logger
	targetWords int

	// OnChunkDone, when set, is invoked after each chunk completes with
	// the number of chunks processed so far and the total. Used for job
	// progress reporting.
	OnChunkDone func(done, total int)
}

// Result is the outcome of processing one document.
type Result struct {
	ChunkCount  int             `json:"chunks"`
	RecordCount int             `json:"questions"`
	Chunks      []chunker.Chunk `json:"-"`
	Records     []Record        `json:"results"`
}

func NewProcessor(qa *generate.QA, log *slog.Logger, targetWords int) *Processor {
	if log == nil {
		log = slog.Default()
	}
	if targetWords <= 0 {
		targetWords = chunker.DefaultTargetWords
	}
	return &Processor{qa: qa, log: log, targetWords: targetWords}
}

// Process runs the full pipeline over documentText. Generation failures are
// absorbed into placeholder records by the generate package and never abort
// the run; only structural failures (missing document id) return an error,
// and then without partial results.
func (p *Processor) Process(ctx context.Context, documentID, documentName, documentText string) (*Result, error) {
	if documentID == "" {
		return nil, errors.New("document id is required")
	}

	drafts := chunker.Split(documentText, p.targetWords)

	chunks := make([]chunker.Chunk, 0, len(drafts))
	var records []Record

	for i, text := range drafts {
		index := i + 1
		chunks = append(chunks, chunker.Chunk{
			Index:     index,
			Text:      text,
			WordCount: chunker.WordCount(text),
		})

		questions := p.qa.Questions(ctx, text, index)
		for _, question := range questions {
			answer := p.qa.Answer(ctx, question, text, index)
			rec := NewRecord(documentID, index, len(records)+1, text, question, answer)
			rec.DocumentName = documentName
			records = append(records, rec)
		}

		if p.OnChunkDone != nil {
			p.OnChunkDone(index, len(drafts))
		}
	}

	p.log.Info("document processed",
		"document_id", documentID,
		"chunks", len(chunks),
		"records", len(records),
	)

	return &Result{
		ChunkCount:  len(chunks),
		RecordCount: len(records),
		Chunks:      chunks,
		Records:     records,
	}, nil
}
