package report

import (
	"time"

	"github.com/spec-kit/feedback-insights/internal/domain"
)

// Snapshot is the frozen dataset published at the end of a run. The
// interactive filter path works exclusively from this document; it never
// re-fetches from the tracker.
type Snapshot struct {
	RunID       string          `json:"runId"`
	LastUpdated time.Time       `json:"lastUpdated"`
	Projects    []ProjectRecord `json:"projects"`
	Issues      []IssueRecord   `json:"issues"`
}

// ProjectRecord is the snapshot form of a tracker project.
type ProjectRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// IssueRecord is the presentation-trimmed form of a normalized ticket.
// The raw description is dropped; derived fields are kept.
type IssueRecord struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	StateType     string     `json:"stateType"`
	Project       string     `json:"project"`
	Epic          string     `json:"epic"`
	EpicID        string     `json:"epicId"`
	FeatureArea   string     `json:"featureArea"`
	Customer      string     `json:"customer,omitempty"`
	Wave          string     `json:"wave,omitempty"`
	SourceType    string     `json:"sourceType"`
	SourceDetail  string     `json:"sourceDetail,omitempty"`
	SourceLabel   string     `json:"sourceLabel"`
	Priority      string     `json:"priority"`
	PriorityValue *int       `json:"priorityValue,omitempty"`
	Quote         string     `json:"quote,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	URL           string     `json:"url"`
}

// BuildSnapshot assembles the snapshot document for one run.
func BuildSnapshot(runID string, tickets []domain.Ticket, projects []domain.Project, now time.Time) Snapshot {
	projectRecords := make([]ProjectRecord, 0, len(projects))
	for _, project := range projects {
		projectRecords = append(projectRecords, ProjectRecord{
			ID:          project.ID,
			Name:        project.Name,
			Description: project.Description,
			Icon:        project.Icon,
		})
	}

	issues := make([]IssueRecord, 0, len(tickets))
	for _, ticket := range tickets {
		issues = append(issues, IssueRecord{
			ID:            ticket.ID,
			Title:         ticket.Title,
			Status:        ticket.Status,
			StateType:     string(ticket.StateType),
			Project:       ticket.Project,
			Epic:          ticket.Epic,
			EpicID:        ticket.EpicID,
			FeatureArea:   ticket.FeatureArea,
			Customer:      ticket.Customer,
			Wave:          ticket.Wave,
			SourceType:    ticket.SourceType,
			SourceDetail:  ticket.SourceDetail,
			SourceLabel:   string(ticket.SourceLabel),
			Priority:      ticket.Priority,
			PriorityValue: ticket.PriorityValue,
			Quote:         ticket.Quote,
			CreatedAt:     ticket.CreatedAt,
			UpdatedAt:     ticket.UpdatedAt,
			CompletedAt:   ticket.CompletedAt,
			URL:           ticket.URL,
		})
	}

	return Snapshot{
		RunID:       runID,
		LastUpdated: now,
		Projects:    projectRecords,
		Issues:      issues,
	}
}

// Tickets reconstructs normalized tickets from the snapshot for
// client-side recomputation. Classification is carried over as stored,
// never re-derived.
func (s Snapshot) Tickets() []domain.Ticket {
	tickets := make([]domain.Ticket, 0, len(s.Issues))
	for _, issue := range s.Issues {
		tickets = append(tickets, domain.Ticket{
			ID:            issue.ID,
			Title:         issue.Title,
			Status:        issue.Status,
			StateType:     domain.StateType(issue.StateType),
			Project:       issue.Project,
			Epic:          issue.Epic,
			EpicID:        issue.EpicID,
			FeatureArea:   issue.FeatureArea,
			Customer:      issue.Customer,
			Wave:          issue.Wave,
			SourceType:    issue.SourceType,
			SourceDetail:  issue.SourceDetail,
			SourceLabel:   domain.SourceLabel(issue.SourceLabel),
			Priority:      issue.Priority,
			PriorityValue: issue.PriorityValue,
			Quote:         issue.Quote,
			CreatedAt:     issue.CreatedAt,
			UpdatedAt:     issue.UpdatedAt,
			CompletedAt:   issue.CompletedAt,
			URL:           issue.URL,
		})
	}
	return tickets
}
