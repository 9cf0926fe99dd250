package database

import (
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

// Retry defaults. Three attempts with delays of 2s, 4s between them.
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 2 * time.Second
)

// sleep is replaced in tests.
var sleep = time.Sleep

// Error signatures that indicate temporary infrastructure unavailability.
// A serverless database waking from idle rejects the first request at the
// control plane; the rest are the usual network failure modes.
var transientSignatures = []string{
	"Control plane request failed",
	"no such host",
	"i/o timeout",
	"fetch failed",
	"connection refused",
	"connection reset by peer",
}

// IsTransient reports whether err matches the fixed set of retryable
// signatures. Errors outside the set are fatal on first occurrence.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := err.Error()
	for _, sig := range transientSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// Retry runs op with the default attempt count and base delay.
func Retry[T any](op func() (T, error)) (T, error) {
	return RetryWith(op, DefaultRetryAttempts, DefaultRetryDelay)
}

// RetryWith runs op up to attempts times, sleeping baseDelay x attempt
// between tries. Only transient errors are retried; any other error, or a
// transient one that survives all attempts, is returned to the caller
// unchanged.
func RetryWith[T any](op func() (T, error), attempts int, baseDelay time.Duration) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := op()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsTransient(err) {
			return zero, err
		}

		log.Printf("database connection issue detected, retrying... (attempt %d/%d): %v", i+1, attempts, err)
		if i < attempts-1 {
			sleep(baseDelay * time.Duration(i+1))
		}
	}

	return zero, lastErr
}
