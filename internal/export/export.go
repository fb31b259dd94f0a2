// Package export serializes curated Q&A records into dataset files.
// JSON, CSV and JSONL are pure views over dataset.Record; nothing here
// mutates records.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/qaforge/qaforge/internal/dataset"
)

// Format identifies a dataset serialization.
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatJSONL Format = "jsonl"
)

// ParseFormat validates a format string, defaulting to JSON when empty.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatJSONL:
		return Format(s), nil
	case "":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSONL:
		return "application/x-ndjson"
	}
	return "application/json"
}

// Options controls what an export contains.
type Options struct {
	IncludeMetadata bool // chunk/document/review fields alongside question+answer
	OnlyApproved    bool // drop records not yet approved
}

// Write serializes records to w in the given format.
func Write(w io.Writer, f Format, records []dataset.Record, opts Options) error {
	if opts.OnlyApproved {
		records = Approved(records)
	}
	switch f {
	case FormatCSV:
		return writeCSV(w, records, opts)
	case FormatJSONL:
		return writeJSONL(w, records, opts)
	default:
		return writeJSON(w, records, opts)
	}
}

// Approved filters records down to those marked approved.
func Approved(records []dataset.Record) []dataset.Record {
	out := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if r.IsApproved {
			out = append(out, r)
		}
	}
	return out
}

type jsonMetadata struct {
	ExportDate     string `json:"exportDate"`
	TotalQuestions int    `json:"totalQuestions"`
	Format         string `json:"format"`
	OnlyApproved   bool   `json:"onlyApproved"`
}

type jsonItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type jsonItemMeta struct {
	jsonItem
	ChunkID      int                  `json:"chunkId"`
	DocumentName string               `json:"documentName"`
	Status       dataset.ReviewStatus `json:"status"`
	IsApproved   bool                 `json:"isApproved"`
}

func writeJSON(w io.Writer, records []dataset.Record, opts Options) error {
	out := struct {
		Metadata *jsonMetadata `json:"metadata,omitempty"`
		Data     []any         `json:"data"`
	}{
		Data: make([]any, 0, len(records)),
	}

	if opts.IncludeMetadata {
		out.Metadata = &jsonMetadata{
			ExportDate:     time.Now().UTC().Format(time.RFC3339),
			TotalQuestions: len(records),
			Format:         string(FormatJSON),
			OnlyApproved:   opts.OnlyApproved,
		}
	}

	for _, r := range records {
		item := jsonItem{ID: r.ID, Question: r.Question, Answer: r.Answer}
		if opts.IncludeMetadata {
			out.Data = append(out.Data, jsonItemMeta{
				jsonItem:     item,
				ChunkID:      r.ChunkID,
				DocumentName: r.DocumentName,
				Status:       r.Status,
				IsApproved:   r.IsApproved,
			})
		} else {
			out.Data = append(out.Data, item)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(w io.Writer, records []dataset.Record, opts Options) error {
	cw := csv.NewWriter(w)

	header := []string{"question", "answer"}
	if opts.IncludeMetadata {
		header = append(header, "document_name", "chunk_id", "status", "is_approved")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{r.Question, r.Answer}
		if opts.IncludeMetadata {
			row = append(row,
				r.DocumentName,
				strconv.Itoa(r.ChunkID),
				string(r.Status),
				strconv.FormatBool(r.IsApproved),
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type jsonlItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type jsonlItemMeta struct {
	jsonlItem
	ChunkID      int                  `json:"chunkId"`
	DocumentName string               `json:"documentName"`
	Status       dataset.ReviewStatus `json:"status"`
	IsApproved   bool                 `json:"isApproved"`
}

func writeJSONL(w io.Writer, records []dataset.Record, opts Options) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		item := jsonlItem{Question: r.Question, Answer: r.Answer}
		var err error
		if opts.IncludeMetadata {
			err = enc.Encode(jsonlItemMeta{
				jsonlItem:    item,
				ChunkID:      r.ChunkID,
				DocumentName: r.DocumentName,
				Status:       r.Status,
				IsApproved:   r.IsApproved,
			})
		} else {
			err = enc.Encode(item)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
