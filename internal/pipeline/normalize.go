package pipeline

import (
	"fmt"
	"time"

	"github.com/spec-kit/feedback-insights/internal/classify"
	"github.com/spec-kit/feedback-insights/internal/domain"
	"github.com/spec-kit/feedback-insights/internal/extract"
	"github.com/spec-kit/feedback-insights/internal/linear"
)

const issueURLBase = "https://linear.app/issue/"

// Normalize assembles one canonical Ticket from a raw issue plus the
// extractor and classifier outputs. It is total: malformed or missing
// optional fields degrade to documented defaults, never an error.
func Normalize(issue linear.Issue) domain.Ticket {
	fields := extract.Parse(issue.Description)

	projectName := ""
	if issue.Project != nil {
		projectName = issue.Project.Name
	}

	parentTitle := ""
	epic := domain.NoEpic
	epicID := ""
	if issue.Parent != nil {
		parentTitle = issue.Parent.Title
		epic = fmt.Sprintf("%s: %s", issue.Parent.Identifier, issue.Parent.Title)
		epicID = issue.Parent.Identifier
	}

	project := projectName
	if project == "" {
		project = domain.NoProject
	}

	priority := issue.PriorityLabel
	if priority == "" {
		priority = domain.NoPriority
	}

	return domain.Ticket{
		ID:            issue.Identifier,
		Title:         issue.Title,
		Status:        issue.State.Name,
		StateType:     domain.StateType(issue.State.Type),
		Project:       project,
		Epic:          epic,
		EpicID:        epicID,
		FeatureArea:   classify.FeatureArea(parentTitle, projectName),
		Customer:      fields.Customer,
		Wave:          fields.Wave,
		SourceType:    classify.SourceType(fields.SourceDetail),
		SourceDetail:  fields.SourceDetail,
		SourceLabel:   classify.SourceLabel(issue.LabelNames()),
		Priority:      priority,
		PriorityValue: priorityValue(issue.Priority),
		Quote:         fields.Quote,
		CreatedAt:     parseTime(issue.CreatedAt),
		UpdatedAt:     parseTime(issue.UpdatedAt),
		CompletedAt:   parseOptionalTime(issue.CompletedAt),
		URL:           issueURLBase + issue.Identifier,
	}
}

// NormalizeAll maps a raw issue batch to normalized tickets in order.
func NormalizeAll(issues []linear.Issue) []domain.Ticket {
	tickets := make([]domain.Ticket, 0, len(issues))
	for _, issue := range issues {
		tickets = append(tickets, Normalize(issue))
	}
	return tickets
}

// priorityValue keeps the numeric rank only when the tracker assigned
// one; zero means unranked upstream.
func priorityValue(raw *int) *int {
	if raw == nil || *raw == 0 {
		return nil
	}
	value := *raw
	return &value
}

func parseTime(raw string) time.Time {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func parseOptionalTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &parsed
}
