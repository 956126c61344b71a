// Package filter recomputes feature-area counts over a frozen dataset
// snapshot for user-selected predicates. Every call recomputes from
// scratch; there is no incremental state and no tracker round-trip.
package filter

import (
	"fmt"
	"time"

	"github.com/spec-kit/feedback-insights/internal/domain"
	"github.com/spec-kit/feedback-insights/internal/report"
)

// Window selects the created-at time range, measured back from now.
type Window string

const (
	WindowAll Window = "all"
	Window30  Window = "30d"
	Window60  Window = "60d"
	Window90  Window = "90d"
)

// SourceAll matches every source label.
const SourceAll = "all"

// ParseWindow validates a user-supplied window selector. Empty input
// means no restriction.
func ParseWindow(raw string) (Window, error) {
	switch Window(raw) {
	case "", WindowAll:
		return WindowAll, nil
	case Window30, Window60, Window90:
		return Window(raw), nil
	}
	return "", fmt.Errorf("unknown time window %q", raw)
}

// Cutoff returns the inclusion lower bound. The second result is false
// when the window places no restriction.
func (w Window) Cutoff(now time.Time) (time.Time, bool) {
	switch w {
	case Window30:
		return now.AddDate(0, 0, -30), true
	case Window60:
		return now.AddDate(0, 0, -60), true
	case Window90:
		return now.AddDate(0, 0, -90), true
	default:
		return time.Time{}, false
	}
}

// Selection is one user-chosen predicate pair.
type Selection struct {
	Window Window
	Source string
}

// Engine holds the frozen ticket set for repeated recomputation.
type Engine struct {
	tickets []domain.Ticket
}

// NewEngine wraps an already-normalized dataset.
func NewEngine(tickets []domain.Ticket) *Engine {
	return &Engine{tickets: tickets}
}

// FeatureAreaCounts applies the selection and regroups by feature area.
// With both selectors set to "all" the result matches the full-set
// grouping computed at run time.
func (e *Engine) FeatureAreaCounts(sel Selection, now time.Time) []report.CategoryCount {
	cutoff, bounded := sel.Window.Cutoff(now)
	matchAllSources := sel.Source == "" || sel.Source == SourceAll

	subset := make([]domain.Ticket, 0, len(e.tickets))
	for _, ticket := range e.tickets {
		if bounded && ticket.CreatedAt.Before(cutoff) {
			continue
		}
		if !matchAllSources && string(ticket.SourceLabel) != sel.Source {
			continue
		}
		subset = append(subset, ticket)
	}
	return report.FeatureAreaCounts(subset)
}
