// Package report derives the named views and grouped counts that feed
// the dashboard artifacts.
package report

import (
	"sort"
	"time"

	"github.com/spec-kit/feedback-insights/internal/domain"
)

// RecentLimit caps the recent-tickets view.
const RecentLimit = 10

// doneWindow keeps freshly completed work visible in the active queue.
const doneWindow = 7 * 24 * time.Hour

// Views are the independently filtered subsets of one normalized run.
type Views struct {
	All         []domain.Ticket
	Customer    []domain.Ticket
	ActiveQueue []domain.Ticket
	Recent      []domain.Ticket
}

// BuildViews computes all views against the given moment. The input slice
// is never mutated.
func BuildViews(tickets []domain.Ticket, now time.Time) Views {
	all := append([]domain.Ticket(nil), tickets...)

	customer := make([]domain.Ticket, 0, len(all))
	for _, ticket := range all {
		if ticket.HasCustomerFeedback() {
			customer = append(customer, ticket)
		}
	}

	queue := make([]domain.Ticket, 0, len(all))
	for _, ticket := range all {
		if inActiveQueue(ticket, now) {
			queue = append(queue, ticket)
		}
	}
	SortQueue(queue)

	recent := append([]domain.Ticket(nil), all...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	return Views{All: all, Customer: customer, ActiveQueue: queue, Recent: recent}
}

// inActiveQueue includes every active-status ticket regardless of
// timestamps, plus Done tickets completed within the last 7 days. A Done
// ticket with no parseable completion date is skipped from the 7-day
// test only; it stays in the dataset.
func inActiveQueue(ticket domain.Ticket, now time.Time) bool {
	if ticket.IsActive() {
		return true
	}
	if ticket.Status != domain.StatusDone || ticket.CompletedAt == nil {
		return false
	}
	return now.Sub(*ticket.CompletedAt) <= doneWindow
}

// SortQueue orders the active queue by status rank, then updated_at
// descending within each rank. This is the single ordering policy for
// the queue everywhere.
func SortQueue(tickets []domain.Ticket) {
	sort.SliceStable(tickets, func(i, j int) bool {
		ri, rj := statusRank(tickets[i].Status), statusRank(tickets[j].Status)
		if ri != rj {
			return ri < rj
		}
		return tickets[i].UpdatedAt.After(tickets[j].UpdatedAt)
	})
}

func statusRank(status string) int {
	for i, active := range domain.ActiveStatuses {
		if status == active {
			return i
		}
	}
	if status == domain.StatusDone {
		return len(domain.ActiveStatuses)
	}
	return len(domain.ActiveStatuses) + 1
}
