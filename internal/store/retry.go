package store

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// RetryableError indicates a transient backend failure (rate limit or 5xx)
// worth retrying.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	msg := e.Message
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return fmt.Sprintf("retryable store error (status %d): %s", e.StatusCode, msg)
}

// IsRetryable checks whether err wraps a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Backoff returns the wait before retry attempt n (0-indexed), exponential
// with jitter and capped at 30s.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int63n(int64(base) / 2))
	return base + jitter
}

// MaxRetries bounds attempts per store call.
const MaxRetries = 3
