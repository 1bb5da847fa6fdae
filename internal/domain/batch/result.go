// Package batch defines the uniform result envelope returned by every batch
// and query operation. CLI/UI layers read the envelope instead of
// interpreting raw errors for expected failure modes.
package batch

// Result carries a boolean success flag, a human-readable message, and
// operation-specific counters.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// Updated is the count of rows actually changed (excludes no-op rows).
	Updated int `json:"updated_count"`

	// Created is the count of rows newly created, where applicable.
	Created int `json:"created,omitempty"`

	// Sent is the count of notifications dispatched, where applicable.
	Sent int `json:"sent_count,omitempty"`
}

// OK builds a success envelope.
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail builds a failure envelope with zeroed counters.
func Fail(message string) Result {
	return Result{Success: false, Message: message}
}

// WithUpdated sets the updated counter.
func (r Result) WithUpdated(n int) Result {
	r.Updated = n
	return r
}

// WithCreated sets the created counter.
func (r Result) WithCreated(n int) Result {
	r.Created = n
	return r
}

// WithSent sets the sent counter.
func (r Result) WithSent(n int) Result {
	r.Sent = n
	return r
}
