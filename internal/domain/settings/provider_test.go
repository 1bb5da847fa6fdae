package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecipients(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"comma separated", "a@x.com,b@x.com", []string{"a@x.com", "b@x.com"}},
		{"semicolons and spaces", "a@x.com; b@x.com ", []string{"a@x.com", "b@x.com"}},
		{"newlines", "a@x.com\nb@x.com\r\nc@x.com", []string{"a@x.com", "b@x.com", "c@x.com"}},
		{"empty entries dropped", "a@x.com,,  ,b@x.com", []string{"a@x.com", "b@x.com"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRecipients(tt.raw))
		})
	}
}

func TestDefaults(t *testing.T) {
	s := Defaults()
	assert.True(t, s.WarningEnabled)
	assert.Empty(t, s.WarningRecipients)
	assert.Equal(t, 10, s.ThresholdPercent)
	assert.Equal(t, 24, s.ResendHours)
}
