package dto

import (
	"time"

	"github.com/spec-kit/feedback-insights/internal/report"
)

// ReportResponse wraps the statistics document for the dashboard.
type ReportResponse struct {
	RunID       string            `json:"run_id"`
	Statistics  report.Statistics `json:"statistics"`
	LastUpdated time.Time         `json:"last_updated"`
}

// FilterResponse is one interactive filter recomputation.
type FilterResponse struct {
	Window      string                 `json:"window"`
	Source      string                 `json:"source"`
	Areas       []report.CategoryCount `json:"areas"`
	GeneratedAt time.Time              `json:"generated_at"`
}
