// Package classify maps raw issue attributes to canonical categories via
// ordered rule tables. Every table is evaluated top to bottom and the
// first matching rule wins, so overlapping keywords resolve
// deterministically. New categories are added by appending rules.
package classify

import (
	"strings"

	"github.com/spec-kit/feedback-insights/internal/domain"
)

type rule struct {
	keywords []string
	value    string
}

var sourceTypeRules = []rule{
	{[]string{"csat", "wave"}, "CSAT Survey"},
	{[]string{"usage", "satisfaction"}, "Usage Survey"},
	{[]string{"early adopter", "qualitative research"}, "Early Adopter Research"},
	{[]string{"beta"}, "Beta Testing"},
	{[]string{"support", "email"}, "Direct Support"},
	{[]string{"internal"}, "Internal"},
}

// SourceType categorizes the free-text source description.
func SourceType(sourceDetail string) string {
	text := strings.ToLower(sourceDetail)
	if text == "" {
		return domain.UnknownSourceType
	}
	for _, r := range sourceTypeRules {
		if containsAny(text, r.keywords) {
			return r.value
		}
	}
	return domain.UnknownSourceType
}

type labelRule struct {
	keywords []string
	label    domain.SourceLabel
}

var sourceLabelRules = []labelRule{
	{[]string{"zendesk"}, domain.SourceLabelZendesk},
	{[]string{"csat"}, domain.SourceLabelCSAT},
	{[]string{"sales"}, domain.SourceLabelSales},
	{[]string{"partner success"}, domain.SourceLabelPartnerSuccess},
	{[]string{"uxr"}, domain.SourceLabelUXR},
	{[]string{"email", "phone", "slack", "in person"}, domain.SourceLabelOther},
}

// SourceLabel categorizes an issue's label set. The outer loop runs over
// rules, not labels, so the result is independent of label order.
func SourceLabel(labels []string) domain.SourceLabel {
	if len(labels) == 0 {
		return domain.SourceLabelUnlabeled
	}
	normalized := make([]string, 0, len(labels))
	for _, label := range labels {
		normalized = append(normalized, normalizeLabel(label))
	}
	for _, r := range sourceLabelRules {
		for _, label := range normalized {
			if containsAny(label, r.keywords) {
				return r.label
			}
		}
	}
	return domain.SourceLabelUnlabeled
}

var featureAreaRules = []rule{
	{[]string{"smart home", "homekit", "integration"}, "Smart Home Integration"},
	{[]string{"thermal", "comfort"}, "Thermals & Comfort"},
	{[]string{"schedule"}, "Schedules"},
	{[]string{"app", "ux"}, "All Things App (UX)"},
	{[]string{"hardware"}, "Hardware Requests"},
	{[]string{"dial"}, "Dial Interface"},
	{[]string{"energy", "usage"}, "Energy Usage"},
	{[]string{"auto-away", "away"}, "Auto-Away Pain Points"},
	{[]string{"mode", "control"}, "Modes & Controls"},
	{[]string{"lighting"}, "Lighting"},
	{[]string{"device", "pairing"}, "Device & Pairing"},
	{[]string{"partner", "tooling"}, "Partner Tooling"},
}

// FeatureArea derives the feature area: a keyword match on the parent
// epic title takes precedence, the project name is the default, and
// absent both the area is Unknown. Never returns an empty string.
func FeatureArea(parentTitle, projectName string) string {
	if parentTitle != "" {
		title := strings.ToLower(parentTitle)
		for _, r := range featureAreaRules {
			if containsAny(title, r.keywords) {
				return r.value
			}
		}
	}
	if projectName != "" {
		return projectName
	}
	return domain.UnknownFeatureArea
}

// normalizeLabel lowercases and collapses separator punctuation so that
// "Partner-Success" and "partner_success" both match "partner success".
func normalizeLabel(label string) string {
	lowered := strings.ToLower(label)
	lowered = strings.ReplaceAll(lowered, "-", " ")
	return strings.ReplaceAll(lowered, "_", " ")
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
