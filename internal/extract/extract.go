// Package extract recovers structured customer-feedback attributes from
// the free-text issue descriptions written by the intake workflow.
package extract

import (
	"regexp"
	"strings"
)

// MaxQuoteLength caps extracted testimonial text.
const MaxQuoteLength = 500

// Fields holds the attributes recovered from one description. Empty
// strings mean the field was absent, which is the common case.
type Fields struct {
	Customer     string
	Quote        string
	Wave         string
	SourceDetail string
}

var (
	customerPattern = regexp.MustCompile(`\*\*Customer:\*\*\s*([^\n]+)`)
	// Primary quote form wraps the testimonial in straight or curly quotes.
	quotePattern = regexp.MustCompile(`\*\*Quote:\*\*\s*["“”]([^"“”]*)["“”]`)
	// Fallback scans to the next blank-line section, the next bold field,
	// or end of text.
	quoteFallbackPattern = regexp.MustCompile(`(?s)\*\*Quote:\*\*\s*(.+?)(?:\n\n|\*\*|$)`)
	wavePattern          = regexp.MustCompile(`\*\*Survey Wave:\*\*\s*(?:[Ww]ave\s*)?(\d+)`)
	sourcePattern        = regexp.MustCompile(`\*\*Source:\*\*\s*([^\n]+)`)

	emailSuffixPattern  = regexp.MustCompile(`\s*\([^()]*@[^()]*\)\s*$`)
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
)

// Parse extracts structured fields from a description. A missing pattern
// match yields an absent value, never an error.
func Parse(description string) Fields {
	var fields Fields
	if description == "" {
		return fields
	}

	if match := customerPattern.FindStringSubmatch(description); match != nil {
		fields.Customer = sanitizeCustomer(match[1])
	}

	quote := ""
	if match := quotePattern.FindStringSubmatch(description); match != nil {
		quote = match[1]
	} else if match := quoteFallbackPattern.FindStringSubmatch(description); match != nil {
		quote = match[1]
	}
	fields.Quote = capQuote(strings.TrimSpace(quote))

	if match := wavePattern.FindStringSubmatch(description); match != nil {
		fields.Wave = "Wave " + match[1]
	}

	if match := sourcePattern.FindStringSubmatch(description); match != nil {
		fields.SourceDetail = strings.TrimSpace(match[1])
	}

	return fields
}

// sanitizeCustomer strips a trailing parenthesized email, unwraps markdown
// link syntax to its label, and trims whitespace.
func sanitizeCustomer(raw string) string {
	cleaned := emailSuffixPattern.ReplaceAllString(raw, "")
	cleaned = markdownLinkPattern.ReplaceAllString(cleaned, "$1")
	return strings.TrimSpace(cleaned)
}

func capQuote(quote string) string {
	runes := []rune(quote)
	if len(runes) <= MaxQuoteLength {
		return quote
	}
	return string(runes[:MaxQuoteLength])
}
