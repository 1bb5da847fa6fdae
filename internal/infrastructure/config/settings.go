// Package config resolves runtime configuration from the environment.
package config

import (
	"context"
	"os"
	"strconv"

	"roomstock/internal/domain/settings"
)

// Environment keys for the warning subsystem.
const (
	EnvWarningEnabled    = "STOCK_WARNING_ENABLED"
	EnvWarningRecipients = "STOCK_WARNING_RECIPIENTS"
	EnvWarningThreshold  = "STOCK_WARNING_THRESHOLD_PERCENT"
	EnvWarningResend     = "STOCK_WARNING_RESEND_HOURS"
)

// Compile-time check that EnvSettingsProvider implements settings.Provider.
var _ settings.Provider = (*EnvSettingsProvider)(nil)

// EnvSettingsProvider reads warning settings from environment variables,
// falling back to the documented defaults for absent or malformed keys.
// It re-reads on every Load, so settings can be changed between runs of
// the dispatcher without restarting anything.
type EnvSettingsProvider struct{}

// NewEnvSettingsProvider creates a new environment-backed provider.
func NewEnvSettingsProvider() *EnvSettingsProvider {
	return &EnvSettingsProvider{}
}

// Load implements settings.Provider.
func (p *EnvSettingsProvider) Load(ctx context.Context) (settings.Settings, error) {
	s := settings.Defaults()

	if raw := os.Getenv(EnvWarningEnabled); raw != "" {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			s.WarningEnabled = enabled
		}
	}

	if raw := os.Getenv(EnvWarningRecipients); raw != "" {
		s.WarningRecipients = settings.ParseRecipients(raw)
	}

	if raw := os.Getenv(EnvWarningThreshold); raw != "" {
		if threshold, err := strconv.Atoi(raw); err == nil && threshold > 0 {
			s.ThresholdPercent = threshold
		}
	}

	if raw := os.Getenv(EnvWarningResend); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			s.ResendHours = hours
		}
	}

	return s, nil
}
