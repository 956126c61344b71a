package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/feedback-insights/internal/domain"
	"github.com/spec-kit/feedback-insights/internal/linear"
)

func sampleIssue() linear.Issue {
	priority := 2
	return linear.Issue{
		ID:            "uuid-1",
		Identifier:    "AB-123",
		Title:         "Add HomeKit support",
		Description:   "**Customer:** Jane Doe (jane@x.com)\n**Quote:** \"Great product\"\n**Survey Wave:** Wave 2\n**Source:** CSAT Q2",
		State:         linear.State{Name: "In Progress", Type: "started"},
		Priority:      &priority,
		PriorityLabel: "High",
		Parent:        &linear.ParentRef{Identifier: "AB-10", Title: "Smart Home Epics"},
		Project:       &linear.ProjectRef{Name: "Integrations"},
		CreatedAt:     "2026-08-01T10:00:00Z",
		UpdatedAt:     "2026-08-10T12:30:00Z",
		Labels:        labelSet("Zendesk-Ticket"),
	}
}

func labelSet(names ...string) linear.LabelConnection {
	var conn linear.LabelConnection
	for _, name := range names {
		conn.Nodes = append(conn.Nodes, linear.Label{Name: name})
	}
	return conn
}

func TestNormalizeFullRecord(t *testing.T) {
	ticket := Normalize(sampleIssue())

	assert.Equal(t, "AB-123", ticket.ID)
	assert.Equal(t, "In Progress", ticket.Status)
	assert.Equal(t, domain.StateTypeStarted, ticket.StateType)
	assert.Equal(t, "Integrations", ticket.Project)
	assert.Equal(t, "AB-10: Smart Home Epics", ticket.Epic)
	assert.Equal(t, "AB-10", ticket.EpicID)
	assert.Equal(t, "Smart Home Integration", ticket.FeatureArea)
	assert.Equal(t, "Jane Doe", ticket.Customer)
	assert.True(t, ticket.HasCustomerFeedback())
	assert.Equal(t, "Wave 2", ticket.Wave)
	assert.Equal(t, "CSAT Survey", ticket.SourceType)
	assert.Equal(t, "CSAT Q2", ticket.SourceDetail)
	assert.Equal(t, domain.SourceLabelZendesk, ticket.SourceLabel)
	assert.Equal(t, "High", ticket.Priority)
	require.NotNil(t, ticket.PriorityValue)
	assert.Equal(t, 2, *ticket.PriorityValue)
	assert.Equal(t, "Great product", ticket.Quote)
	assert.Equal(t, "https://linear.app/issue/AB-123", ticket.URL)
	assert.Equal(t, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), ticket.CreatedAt)
	assert.Nil(t, ticket.CompletedAt)
}

func TestNormalizeDefaults(t *testing.T) {
	ticket := Normalize(linear.Issue{
		Identifier: "AB-9",
		Title:      "Bare ticket",
		State:      linear.State{Name: "Backlog", Type: "open"},
	})

	assert.Equal(t, domain.NoProject, ticket.Project)
	assert.Equal(t, domain.NoEpic, ticket.Epic)
	assert.Empty(t, ticket.EpicID)
	assert.Equal(t, domain.UnknownFeatureArea, ticket.FeatureArea)
	assert.Empty(t, ticket.Customer)
	assert.False(t, ticket.HasCustomerFeedback())
	assert.Equal(t, domain.UnknownSourceType, ticket.SourceType)
	assert.Equal(t, domain.SourceLabelUnlabeled, ticket.SourceLabel)
	assert.Equal(t, domain.NoPriority, ticket.Priority)
	assert.Nil(t, ticket.PriorityValue)
	assert.True(t, ticket.CreatedAt.IsZero())
}

func TestNormalizeProjectDefaultDoesNotLeakIntoFeatureArea(t *testing.T) {
	// An absent project must yield "Unknown", not "No Project", as the
	// feature area.
	ticket := Normalize(linear.Issue{
		Identifier: "AB-11",
		State:      linear.State{Name: "Todo", Type: "open"},
	})
	assert.Equal(t, domain.NoProject, ticket.Project)
	assert.Equal(t, domain.UnknownFeatureArea, ticket.FeatureArea)
}

func TestNormalizePriorityZeroIsUnranked(t *testing.T) {
	zero := 0
	ticket := Normalize(linear.Issue{
		Identifier: "AB-12",
		State:      linear.State{Name: "Todo", Type: "open"},
		Priority:   &zero,
	})
	assert.Nil(t, ticket.PriorityValue)
}

func TestNormalizeMalformedDates(t *testing.T) {
	ticket := Normalize(linear.Issue{
		Identifier:  "AB-13",
		State:       linear.State{Name: "Done", Type: "completed"},
		CreatedAt:   "not-a-date",
		CompletedAt: "also-not-a-date",
	})
	assert.True(t, ticket.CreatedAt.IsZero())
	assert.Nil(t, ticket.CompletedAt)
}

func TestNormalizeCompletedAt(t *testing.T) {
	ticket := Normalize(linear.Issue{
		Identifier:  "AB-14",
		State:       linear.State{Name: "Done", Type: "completed"},
		CompletedAt: "2026-08-20T09:00:00Z",
	})
	require.NotNil(t, ticket.CompletedAt)
	assert.Equal(t, time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC), *ticket.CompletedAt)
}

func TestNormalizeAllPreservesOrder(t *testing.T) {
	issues := []linear.Issue{
		{Identifier: "AB-1", State: linear.State{Name: "Todo", Type: "open"}},
		{Identifier: "AB-2", State: linear.State{Name: "Todo", Type: "open"}},
	}
	tickets := NormalizeAll(issues)
	require.Len(t, tickets, 2)
	assert.Equal(t, "AB-1", tickets[0].ID)
	assert.Equal(t, "AB-2", tickets[1].ID)
}
