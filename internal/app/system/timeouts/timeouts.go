// Package timeouts provides centralized timeout values for handler
// database operations, used with context.WithTimeout.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and writes
//   - Medium: list queries and multi-step read/write sequences
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document operations.
// Examples: get by ID, lookup by email, photo overwrite.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and check-then-act
// sequences that touch more than one document.
func Medium() time.Duration { return medium }
