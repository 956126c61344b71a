package report

import (
	"sort"
	"time"

	"github.com/spec-kit/feedback-insights/internal/domain"
)

// CategoryCount is one grouped-count entry.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// GroupCount tallies tickets by the key function, descending by count.
// Ties break on value so output is deterministic.
func GroupCount(tickets []domain.Ticket, key func(domain.Ticket) string) []CategoryCount {
	tally := make(map[string]int)
	for _, ticket := range tickets {
		tally[key(ticket)]++
	}
	counts := make([]CategoryCount, 0, len(tally))
	for value, count := range tally {
		counts = append(counts, CategoryCount{Value: value, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})
	return counts
}

// FeatureAreaCounts groups tickets by feature area. Shared by the batch
// statistics and the interactive filter engine so both paths agree.
func FeatureAreaCounts(tickets []domain.Ticket) []CategoryCount {
	return GroupCount(tickets, func(t domain.Ticket) string { return t.FeatureArea })
}

// Statistics is the aggregate document persisted alongside the CSV.
type Statistics struct {
	TotalTickets    int             `json:"total_tickets"`
	UniqueCustomers int             `json:"unique_customers"`
	ByFeatureArea   []CategoryCount `json:"by_feature_area"`
	ByEpic          []CategoryCount `json:"by_epic"`
	ByWave          []CategoryCount `json:"by_wave"`
	BySourceType    []CategoryCount `json:"by_source_type"`
	BySourceLabel   []CategoryCount `json:"by_source_label"`
	ByPriority      []CategoryCount `json:"by_priority"`
	LastUpdated     time.Time       `json:"last_updated"`
}

// BuildStatistics computes grouped counts: feature area over the full
// set, the remaining dimensions over customer-attributed tickets.
func BuildStatistics(views Views, now time.Time) Statistics {
	customers := make(map[string]struct{})
	for _, ticket := range views.Customer {
		customers[ticket.Customer] = struct{}{}
	}

	return Statistics{
		TotalTickets:    len(views.All),
		UniqueCustomers: len(customers),
		ByFeatureArea:   FeatureAreaCounts(views.All),
		ByEpic:          GroupCount(views.Customer, func(t domain.Ticket) string { return t.Epic }),
		ByWave:          GroupCount(views.Customer, waveKey),
		BySourceType:    GroupCount(views.Customer, func(t domain.Ticket) string { return t.SourceType }),
		BySourceLabel:   GroupCount(views.Customer, func(t domain.Ticket) string { return string(t.SourceLabel) }),
		ByPriority:      GroupCount(views.Customer, func(t domain.Ticket) string { return t.Priority }),
		LastUpdated:     now,
	}
}

// waveKey folds tickets without a survey wave into one display bucket.
func waveKey(t domain.Ticket) string {
	if t.Wave == "" {
		return "Unknown"
	}
	return t.Wave
}
