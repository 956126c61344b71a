package domain

import "time"

// StateType is the closed status category reported by the tracker.
type StateType string

const (
	StateTypeOpen      StateType = "open"
	StateTypeStarted   StateType = "started"
	StateTypeCompleted StateType = "completed"
	StateTypeCanceled  StateType = "canceled"
)

// SourceLabel is the canonical feedback channel derived from issue labels.
type SourceLabel string

const (
	SourceLabelZendesk        SourceLabel = "zendesk"
	SourceLabelCSAT           SourceLabel = "CSAT"
	SourceLabelSales          SourceLabel = "sales"
	SourceLabelPartnerSuccess SourceLabel = "partner success"
	SourceLabelUXR            SourceLabel = "UXR"
	SourceLabelOther          SourceLabel = "other"
	SourceLabelUnlabeled      SourceLabel = "unlabeled"
)

// Canonical fallbacks used when an optional raw field is absent.
const (
	NoProject          = "No Project"
	NoEpic             = "No Epic"
	NoPriority         = "No Priority"
	UnknownFeatureArea = "Unknown"
	UnknownSourceType  = "Unknown"
)

// ActiveStatuses are the workflow statuses considered current work.
// Order matters: it is the display rank of the active queue.
var ActiveStatuses = []string{"In Progress", "Todo", "In Review"}

// StatusDone is the completed workflow status eligible for the active
// queue within the recency window.
const StatusDone = "Done"

// Ticket is a normalized feature-request record. It is assembled once per
// pipeline run and never mutated afterwards.
type Ticket struct {
	ID            string
	Title         string
	Status        string
	StateType     StateType
	Project       string
	Epic          string
	EpicID        string
	FeatureArea   string
	Customer      string
	Wave          string
	SourceType    string
	SourceDetail  string
	SourceLabel   SourceLabel
	Priority      string
	PriorityValue *int
	Quote         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
	URL           string
}

// HasCustomerFeedback reports whether the ticket carries an attributed
// customer. Empty customer means no attribution was extracted.
func (t Ticket) HasCustomerFeedback() bool {
	return t.Customer != ""
}

// IsActive reports whether the ticket status counts as current work.
func (t Ticket) IsActive() bool {
	for _, status := range ActiveStatuses {
		if t.Status == status {
			return true
		}
	}
	return false
}

// Project is a tracker project held alongside tickets for the dashboard.
// Tickets reference projects by denormalized name only.
type Project struct {
	ID          string
	Name        string
	Description string
	Icon        string
}
