// Package store is the HTTP client for the external curation backend, which
// owns persistence of documents, chunks and Q&A records. The pipeline hands
// results to this client after a run completes; nothing here is consulted
// during generation.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/qaforge/qaforge/internal/chunker"
	"github.com/qaforge/qaforge/internal/dataset"
)

// Client communicates with the curation backend API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Document is the backend's view of an uploaded document.
type Document struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	ChunkCount  int    `json:"chunkCount"`
	RecordCount int    `json:"recordCount"`
}

// SaveResultsRequest is the body for PUT /documents/{id}/results.
type SaveResultsRequest struct {
	Name    string           `json:"name"`
	Status  string           `json:"status"`
	Chunks  []chunker.Chunk  `json:"chunks"`
	Records []dataset.Record `json:"questions"`
}

// RecordUpdate is a partial update applied to one record. Nil fields are
// left unchanged by the backend.
type RecordUpdate struct {
	Question   *string               `json:"question,omitempty"`
	Answer     *string               `json:"answer,omitempty"`
	Status     *dataset.ReviewStatus `json:"status,omitempty"`
	IsApproved *bool                 `json:"isApproved,omitempty"`
}

// SaveResults stores a completed pipeline run for a document.
func (c *Client) SaveResults(ctx context.Context, docID string, req SaveResultsRequest) error {
	return c.do(ctx, http.MethodPut, "/documents/"+docID+"/results", req, nil)
}

// ListDocuments returns all documents known to the backend.
func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	var out struct {
		Documents []Document `json:"documents"`
	}
	if err := c.do(ctx, http.MethodGet, "/documents", nil, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

// GetRecords fetches all Q&A records for a document.
func (c *Client) GetRecords(ctx context.Context, docID string) ([]dataset.Record, error) {
	var out struct {
		Records []dataset.Record `json:"questions"`
	}
	if err := c.do(ctx, http.MethodGet, "/documents/"+docID+"/questions", nil, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// UpdateRecord applies a review update to one record.
func (c *Client) UpdateRecord(ctx context.Context, recordID string, upd RecordUpdate) error {
	return c.do(ctx, http.MethodPatch, "/questions/"+recordID, upd, nil)
}

// DeleteDocument removes a document and its derived chunks and records.
func (c *Client) DeleteDocument(ctx context.Context, docID string) error {
	return c.do(ctx, http.MethodDelete, "/documents/"+docID, nil, nil)
}

// do issues one request with retry on transient failures. Request bodies are
// re-marshaled per attempt; responses are decoded into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(Backoff(attempt - 1)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		lastErr = c.doOnce(ctx, method, path, in, out)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &RetryableError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
