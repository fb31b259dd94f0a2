package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/qaforge/qaforge/internal/generate"
)

// scriptedGenerator answers question prompts with a fixed numbered list and
// answer prompts with a fixed string. It distinguishes the two by the prompt
// preamble.
type scriptedGenerator struct {
	questionsPerChunk int
	failAll           bool
	calls             int
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string, _ generate.SamplingConfig) (string, error) {
	g.calls++
	if g.failAll {
		return "", errors.New("model unavailable")
	}
	if strings.Contains(prompt, "generate 2-3 specific, answerable questions") {
		var sb strings.Builder
		for i := 1; i <= g.questionsPerChunk; i++ {
			fmt.Fprintf(&sb, "%d. Question %d?\n", i, i)
		}
		return sb.String(), nil
	}
	return "A grounded answer.", nil
}

func newTestProcessor(gen generate.Generator, targetWords int) *Processor {
	return NewProcessor(generate.NewQA(gen, nil), nil, targetWords)
}

func TestProcess_RecordIDsAndOrder(t *testing.T) {
	// Two paragraphs, tiny budget -> two chunks; two questions per chunk.
	gen := &scriptedGenerator{questionsPerChunk: 2}
	p := newTestProcessor(gen, 3)

	res, err := p.Process(context.Background(), "doc1", "Doc One", "Para one word word.\n\nPara two word word word.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.ChunkCount != 2 {
		t.Fatalf("expected 2 chunks, got %d", res.ChunkCount)
	}
	if res.RecordCount != 4 {
		t.Fatalf("expected 4 records, got %d", res.RecordCount)
	}

	wantIDs := []string{"doc1-1-1", "doc1-1-2", "doc1-2-3", "doc1-2-4"}
	wantChunk := []int{1, 1, 2, 2}
	for i, rec := range res.Records {
		if rec.ID != wantIDs[i] {
			t.Errorf("record %d: expected id %q, got %q", i, wantIDs[i], rec.ID)
		}
		if rec.ChunkID != wantChunk[i] {
			t.Errorf("record %d: expected chunkId %d, got %d", i, wantChunk[i], rec.ChunkID)
		}
		if rec.DocumentName != "Doc One" {
			t.Errorf("record %d: expected document name set, got %q", i, rec.DocumentName)
		}
	}
}

func TestProcess_OneQuestionPerChunkScenario(t *testing.T) {
	gen := &scriptedGenerator{questionsPerChunk: 1}
	p := newTestProcessor(gen, 3)

	res, err := p.Process(context.Background(), "doc1", "d", "Para one word word.\n\nPara two word word word.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res.Records))
	}
	if res.Records[0].ID != "doc1-1-1" || res.Records[1].ID != "doc1-2-2" {
		t.Errorf("expected ids doc1-1-1 and doc1-2-2, got %q and %q",
			res.Records[0].ID, res.Records[1].ID)
	}
}

func TestProcess_InitialReviewState(t *testing.T) {
	gen := &scriptedGenerator{questionsPerChunk: 3}
	p := newTestProcessor(gen, 100)

	res, err := p.Process(context.Background(), "doc9", "d", "Some paragraph of text.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, rec := range res.Records {
		if rec.Status != StatusGenerated {
			t.Errorf("record %d: expected status generated, got %q", i, rec.Status)
		}
		if rec.IsApproved {
			t.Errorf("record %d: expected isApproved false", i)
		}
	}
}

func TestProcess_GenerationFailureDegradesToPlaceholders(t *testing.T) {
	gen := &scriptedGenerator{failAll: true}
	p := newTestProcessor(gen, 3)

	res, err := p.Process(context.Background(), "doc2", "d", "First para words here.\n\nSecond para words here too.")
	if err != nil {
		t.Fatalf("expected pipeline to absorb generation failures, got %v", err)
	}
	// One fallback question per chunk, each with a fallback answer.
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 placeholder records, got %d", len(res.Records))
	}
	for i, rec := range res.Records {
		if rec.Question == "" || rec.Answer == "" {
			t.Errorf("record %d: placeholder fields must be non-empty", i)
		}
		if !strings.Contains(rec.Question, fmt.Sprint(rec.ChunkID)) {
			t.Errorf("record %d: expected question to reference chunk %d, got %q", i, rec.ChunkID, rec.Question)
		}
		if rec.Status != StatusGenerated {
			t.Errorf("record %d: expected status generated even on fallback, got %q", i, rec.Status)
		}
	}
}

func TestProcess_ChunkMetadata(t *testing.T) {
	gen := &scriptedGenerator{questionsPerChunk: 1}
	p := newTestProcessor(gen, 3)

	res, err := p.Process(context.Background(), "doc3", "d", "alpha beta gamma.\n\ndelta epsilon zeta eta.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(res.Chunks))
	}
	if res.Chunks[0].Index != 1 || res.Chunks[1].Index != 2 {
		t.Errorf("expected 1-based chunk indices, got %d and %d", res.Chunks[0].Index, res.Chunks[1].Index)
	}
	if res.Chunks[0].WordCount != 3 {
		t.Errorf("expected word count 3, got %d", res.Chunks[0].WordCount)
	}
	if res.Records[0].ChunkText != res.Chunks[0].Text {
		t.Error("expected record chunkText to mirror the producing chunk")
	}
}

func TestProcess_EmptyDocumentID(t *testing.T) {
	gen := &scriptedGenerator{questionsPerChunk: 1}
	p := newTestProcessor(gen, 0)

	if _, err := p.Process(context.Background(), "", "d", "text"); err == nil {
		t.Error("expected error for missing document id")
	}
}

func TestProcess_ProgressCallback(t *testing.T) {
	gen := &scriptedGenerator{questionsPerChunk: 1}
	p := newTestProcessor(gen, 3)

	var seen []int
	total := 0
	p.OnChunkDone = func(done, tot int) {
		seen = append(seen, done)
		total = tot
	}

	_, err := p.Process(context.Background(), "doc4", "d", "one two three four.\n\nfive six seven eight.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("expected progress [1 2], got %v", seen)
	}
}
