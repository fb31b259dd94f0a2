package jobs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/qaforge/qaforge/internal/dataset"
	"github.com/qaforge/qaforge/internal/generate"
	"github.com/qaforge/qaforge/internal/parser"
	"github.com/qaforge/qaforge/internal/store"
)

// Worker processes a single document job. Each worker goroutine owns its own
// Worker so the processor's progress callback can be rebound per job.
type Worker struct {
	processor *dataset.Processor
	store     *store.Client
	log       *slog.Logger

	pdfFallback bool
}

func NewWorker(qa *generate.QA, st *store.Client, log *slog.Logger, targetWords int, pdfFallback bool) *Worker {
	return &Worker{
		processor:   dataset.NewProcessor(qa, log, targetWords),
		store:       st,
		log:         log,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full ingest pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = w.pdfFallback
	}

	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title == "" {
		job.SetTitle(doc.Title)
	}

	if strings.TrimSpace(doc.Text) == "" {
		log.Warn("no extractable content")
		job.AddError("no extractable content")
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2+3: Chunk and generate. The processor reports per-chunk
	// progress; the first callback also pins the total.
	job.SetStatus(StatusChunking, "chunking")
	w.processor.OnChunkDone = func(done, total int) {
		if done == 1 {
			job.SetTotalChunks(total)
			job.SetStatus(StatusGenerating, "generating")
		}
		job.IncrChunksProcessed()
	}
	result, err := w.processor.Process(ctx, job.DocID, job.Title, doc.Text)
	if err != nil {
		log.Error("processing failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "generating")
		return
	}
	job.AddRecords(result.RecordCount, 0)
	log.Info("generation complete", "chunks", result.ChunkCount, "records", result.RecordCount)

	// Phase 4: Hand results to the curation backend.
	job.SetStatus(StatusStoring, "storing")
	err = w.store.SaveResults(ctx, job.DocID, store.SaveResultsRequest{
		Name:    job.Title,
		Status:  "completed",
		Chunks:  result.Chunks,
		Records: result.Records,
	})
	if err != nil {
		log.Error("store failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		// Records exist but were not persisted.
		job.SetStatus(StatusPartial, "storing")
		return
	}

	job.AddRecords(0, result.RecordCount)
	log.Info("storage complete", "stored", result.RecordCount)
	job.SetStatus(StatusCompleted, "done")
}
