package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStructuredDescription(t *testing.T) {
	description := "**Customer:** Jane Doe (jane@x.com)\n" +
		"**Quote:** \"Great product\"\n" +
		"**Survey Wave:** Wave 2\n" +
		"**Source:** CSAT Q2"

	fields := Parse(description)

	assert.Equal(t, "Jane Doe", fields.Customer)
	assert.Equal(t, "Great product", fields.Quote)
	assert.Equal(t, "Wave 2", fields.Wave)
	assert.Equal(t, "CSAT Q2", fields.SourceDetail)
}

func TestParseAbsentFields(t *testing.T) {
	for _, description := range []string{"", "Just a plain feature request with no intake template."} {
		fields := Parse(description)
		assert.Empty(t, fields.Customer)
		assert.Empty(t, fields.Quote)
		assert.Empty(t, fields.Wave)
		assert.Empty(t, fields.SourceDetail)
	}
}

func TestCustomerSanitization(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "**Customer:** Acme Corp", "Acme Corp"},
		{"email suffix", "**Customer:** Bob Smith (bob@acme.io)", "Bob Smith"},
		{"markdown link", "**Customer:** [Acme Corp](https://acme.example)", "Acme Corp"},
		{"link then email", "**Customer:** [Jo](https://x.example) (jo@x.example)", "Jo"},
		{"surrounding whitespace", "**Customer:**    Spaced Out   ", "Spaced Out"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.raw).Customer)
		})
	}
}

func TestQuoteFallbackPattern(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			"unquoted to blank line",
			"**Quote:** Love the new dial\n\nUnrelated paragraph.",
			"Love the new dial",
		},
		{
			"unquoted to next field",
			"**Quote:** Needs homekit support\n**Survey Wave:** 3",
			"Needs homekit support",
		},
		{
			"unquoted to end of text",
			"**Quote:** Short and sweet",
			"Short and sweet",
		},
		{
			"curly quotes use primary",
			"**Quote:** “Curly quoted”\n\nRest ignored",
			"Curly quoted",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.description).Quote)
		})
	}
}

func TestQuoteLengthCap(t *testing.T) {
	long := strings.Repeat("x", 700)
	fields := Parse("**Quote:** \"" + long + "\"")
	assert.Len(t, fields.Quote, MaxQuoteLength)
}

func TestWaveNormalization(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"**Survey Wave:** Wave 2", "Wave 2"},
		{"**Survey Wave:** 3", "Wave 3"},
		{"**Survey Wave:** wave 11", "Wave 11"},
		{"no wave here", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Parse(tc.description).Wave, tc.description)
	}
}
