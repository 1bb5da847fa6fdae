// Package warning provides the low-stock warning dispatcher: it scans
// warning-classified summaries and emits deduplicated notifications.
package warning

import (
	"context"
	"time"
)

// Cache is the debounce store keyed per (hotel, room-type, date).
//
// The dispatcher uses GetLastSent followed by SetLastSent. That
// read-then-write sequence can double-send under concurrent dispatcher
// runs; this is an accepted limitation of the single-writer model.
// TryAcquire is the atomic alternative for callers that need safety under
// true concurrency.
type Cache interface {
	// GetLastSent returns the timestamp of the last notification for the
	// key, and whether an entry exists.
	GetLastSent(ctx context.Context, key string) (time.Time, bool, error)

	// SetLastSent records a notification timestamp with the given TTL.
	SetLastSent(ctx context.Context, key string, at time.Time, ttl time.Duration) error

	// TryAcquire atomically claims the key for ttl. Returns false when the
	// key is already held.
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Mailer delivers a notification. Fire-and-forget: no delivery receipt is
// awaited beyond the synchronous error.
type Mailer interface {
	Send(ctx context.Context, subject, htmlBody string, recipients []string) error
}
