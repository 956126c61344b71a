package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/feedback-insights/internal/domain"
)

func TestSourceType(t *testing.T) {
	tests := []struct {
		detail string
		want   string
	}{
		{"CSAT Q2", "CSAT Survey"},
		{"Wave 3 follow-up", "CSAT Survey"},
		{"Usage Survey Q3", "Usage Survey"},
		{"Satisfaction check-in", "Usage Survey"},
		{"Early adopter interview", "Early Adopter Research"},
		{"Qualitative research session", "Early Adopter Research"},
		{"Beta cohort feedback", "Beta Testing"},
		{"Support ticket escalation", "Direct Support"},
		{"Email thread", "Direct Support"},
		{"Internal dogfooding", "Internal"},
		{"Word of mouth", "Unknown"},
		{"", "Unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SourceType(tc.detail), "detail=%q", tc.detail)
	}
}

func TestSourceTypeRuleOrder(t *testing.T) {
	// "CSAT Usage review" matches both survey rules; the CSAT rule is
	// evaluated first and must win.
	assert.Equal(t, "CSAT Survey", SourceType("CSAT Usage review"))
}

func TestSourceLabel(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   domain.SourceLabel
	}{
		{"zendesk label", []string{"Zendesk-Ticket"}, domain.SourceLabelZendesk},
		{"generic channel", []string{"phone-call"}, domain.SourceLabelOther},
		{"slack channel", []string{"Slack"}, domain.SourceLabelOther},
		{"partner success", []string{"Partner-Success"}, domain.SourceLabelPartnerSuccess},
		{"uxr", []string{"UXR-Session"}, domain.SourceLabelUXR},
		{"no labels", nil, domain.SourceLabelUnlabeled},
		{"unrecognized labels", []string{"needs-triage", "q3"}, domain.SourceLabelUnlabeled},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SourceLabel(tc.labels))
		})
	}
}

func TestSourceLabelOrderIndependent(t *testing.T) {
	forward := SourceLabel([]string{"sales-inquiry", "Zendesk-Ticket", "phone-call"})
	reversed := SourceLabel([]string{"phone-call", "Zendesk-Ticket", "sales-inquiry"})

	assert.Equal(t, forward, reversed)
	// zendesk outranks sales and the generic channels regardless of
	// where it appears in the label set.
	assert.Equal(t, domain.SourceLabelZendesk, forward)
}

func TestFeatureArea(t *testing.T) {
	tests := []struct {
		name        string
		parentTitle string
		projectName string
		want        string
	}{
		{"smart home parent", "Smart Home Epics", "", "Smart Home Integration"},
		{"homekit parent", "HomeKit support requests", "", "Smart Home Integration"},
		{"thermal parent", "Thermal tuning", "", "Thermals & Comfort"},
		{"schedule parent", "Schedule improvements", "", "Schedules"},
		{"app parent", "App polish backlog", "", "All Things App (UX)"},
		{"hardware parent", "Hardware wishlist", "", "Hardware Requests"},
		{"dial parent", "Dial friction", "", "Dial Interface"},
		{"energy parent", "Energy insights", "", "Energy Usage"},
		{"auto-away parent", "Auto-Away complaints", "", "Auto-Away Pain Points"},
		{"mode parent", "Mode switching", "", "Modes & Controls"},
		{"lighting parent", "Lighting scenes", "", "Lighting"},
		{"pairing parent", "Pairing flow", "", "Device & Pairing"},
		{"tooling parent", "Installer tooling", "", "Partner Tooling"},
		{"parent rule beats project", "Schedule improvements", "Mobile", "Schedules"},
		{"project default", "Quarterly misc", "Mobile", "Mobile"},
		{"no parent falls to project", "", "Mobile", "Mobile"},
		{"absent both", "", "", "Unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FeatureArea(tc.parentTitle, tc.projectName))
		})
	}
}

func TestFeatureAreaNeverEmpty(t *testing.T) {
	inputs := [][2]string{{"", ""}, {"anything at all", ""}, {"", "Some Project"}}
	for _, pair := range inputs {
		assert.NotEmpty(t, FeatureArea(pair[0], pair[1]))
	}
}
