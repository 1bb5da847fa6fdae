package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvSettingsProviderDefaults(t *testing.T) {
	t.Setenv(EnvWarningEnabled, "")
	t.Setenv(EnvWarningRecipients, "")
	t.Setenv(EnvWarningThreshold, "")
	t.Setenv(EnvWarningResend, "")

	s, err := NewEnvSettingsProvider().Load(context.Background())
	require.NoError(t, err)

	assert.True(t, s.WarningEnabled)
	assert.Empty(t, s.WarningRecipients)
	assert.Equal(t, 10, s.ThresholdPercent)
	assert.Equal(t, 24, s.ResendHours)
}

func TestEnvSettingsProviderOverrides(t *testing.T) {
	t.Setenv(EnvWarningEnabled, "false")
	t.Setenv(EnvWarningRecipients, "ops@example.com, sales@example.com")
	t.Setenv(EnvWarningThreshold, "25")
	t.Setenv(EnvWarningResend, "6")

	s, err := NewEnvSettingsProvider().Load(context.Background())
	require.NoError(t, err)

	assert.False(t, s.WarningEnabled)
	assert.Equal(t, []string{"ops@example.com", "sales@example.com"}, s.WarningRecipients)
	assert.Equal(t, 25, s.ThresholdPercent)
	assert.Equal(t, 6, s.ResendHours)
}

func TestEnvSettingsProviderIgnoresMalformedValues(t *testing.T) {
	t.Setenv(EnvWarningEnabled, "maybe")
	t.Setenv(EnvWarningThreshold, "-5")
	t.Setenv(EnvWarningResend, "soon")

	s, err := NewEnvSettingsProvider().Load(context.Background())
	require.NoError(t, err)

	assert.True(t, s.WarningEnabled)
	assert.Equal(t, 10, s.ThresholdPercent)
	assert.Equal(t, 24, s.ResendHours)
}
