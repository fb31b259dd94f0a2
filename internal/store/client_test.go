package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/qaforge/qaforge/internal/dataset"
)

func TestListDocuments(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/documents" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"documents":[{"id":"d1","name":"Doc","status":"completed","chunkCount":3,"recordCount":7}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	docs, err := c.ListDocuments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if len(docs) != 1 || docs[0].ID != "d1" || docs[0].RecordCount != 7 {
		t.Errorf("unexpected documents: %+v", docs)
	}
}

func TestUpdateRecord_NonRetryableFailsOnce(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":"no such record"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	status := dataset.StatusApproved
	err := c.UpdateRecord(context.Background(), "r1", RecordUpdate{Status: &status})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected a single attempt for a 404, got %d", calls)
	}
	if IsRetryable(err) {
		t.Error("404 must not be classified retryable")
	}
}

func TestDo_RetryableClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	err := c.doOnce(context.Background(), http.MethodGet, "/documents", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsRetryable(err) {
		t.Errorf("expected 503 to be retryable, got %v", err)
	}
	var re *RetryableError
	if !errors.As(err, &re) || re.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("unexpected error detail: %v", err)
	}
}

func TestBackoff_CappedAndPositive(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		d := Backoff(attempt)
		if d < time.Second {
			t.Errorf("attempt %d: backoff %v below base", attempt, d)
		}
		if d > 45*time.Second {
			t.Errorf("attempt %d: backoff %v above cap+jitter", attempt, d)
		}
	}
}
