// Package settings defines the configuration read model for the warning
// subsystem. Values come from a plain key-value store; every key has a
// documented default so a missing store still yields a working system.
package settings

import (
	"context"
	"strings"
)

// Default values applied when a key is absent.
const (
	DefaultWarningEnabled   = true
	DefaultThresholdPercent = 10
	DefaultResendHours      = 24
)

// Settings holds the resolved warning configuration.
type Settings struct {
	// WarningEnabled gates the whole dispatcher.
	WarningEnabled bool

	// WarningRecipients is the resolved recipient list.
	WarningRecipients []string

	// ThresholdPercent is the available-room percentage at or below which
	// a summary is classified WARNING.
	ThresholdPercent int

	// ResendHours is the minimum time between two warnings for the same
	// (hotel, room-type, date) key.
	ResendHours int
}

// Provider resolves settings at dispatch time. Implementations read an
// env-style key-value source; no process-wide mutable singleton.
type Provider interface {
	Load(ctx context.Context) (Settings, error)
}

// ParseRecipients splits a comma- or newline-separated recipient string,
// trimming blanks and dropping empty entries.
func ParseRecipients(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r' || r == ';'
	})

	recipients := make([]string, 0, len(fields))
	for _, f := range fields {
		if addr := strings.TrimSpace(f); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}

// Defaults returns the documented default settings table.
func Defaults() Settings {
	return Settings{
		WarningEnabled:    DefaultWarningEnabled,
		WarningRecipients: nil,
		ThresholdPercent:  DefaultThresholdPercent,
		ResendHours:       DefaultResendHours,
	}
}

// StaticProvider returns fixed settings. Used in tests and as a fallback.
type StaticProvider struct {
	Settings Settings
}

// Load implements Provider.
func (p *StaticProvider) Load(ctx context.Context) (Settings, error) {
	return p.Settings, nil
}

var _ Provider = (*StaticProvider)(nil)
