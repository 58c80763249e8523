// Package repository holds the read/write facades that compose the TTL
// cache, the rate limiter and the remote store. This file defines the
// error types shared across them so handlers can distinguish failure
// modes: missing principal, rate-limit rejection and validation problems
// each get dedicated HTTP treatment, everything else is a generic remote
// failure.
package repository

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnauthenticated is returned when an operation requires a principal
// and none is available. Handlers translate it into HTTP 401.
var ErrUnauthenticated = errors.New("user not authenticated")

// ErrContentTooLong is returned when star content exceeds the 200
// character bound after trimming. Empty content is valid.
var ErrContentTooLong = errors.New("content exceeds 200 characters")

// ErrEmptyJarName is returned when a jar name is empty after trimming.
var ErrEmptyJarName = errors.New("jar name must not be empty")

// ErrJarNameTooLong is returned when a jar name exceeds 50 characters.
var ErrJarNameTooLong = errors.New("jar name exceeds 50 characters")

// RateLimitError carries the limiter's explanation as structured fields so
// the UI can render a dedicated panel instead of a generic retry prompt.
type RateLimitError struct {
	Message   string
	Remaining int
	ResetTime *time.Time
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "rate limit exceeded"
}

// IsRateLimit reports whether err is (or wraps) a RateLimitError.
func IsRateLimit(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
