package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/feedback-insights/internal/domain"
	"github.com/spec-kit/feedback-insights/internal/report"
)

var now = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func dataset() []domain.Ticket {
	mk := func(id, area string, label domain.SourceLabel, daysOld int) domain.Ticket {
		return domain.Ticket{
			ID:          id,
			FeatureArea: area,
			SourceLabel: label,
			CreatedAt:   now.AddDate(0, 0, -daysOld),
		}
	}
	return []domain.Ticket{
		mk("AB-1", "Schedules", domain.SourceLabelZendesk, 5),
		mk("AB-2", "Schedules", domain.SourceLabelCSAT, 45),
		mk("AB-3", "Lighting", domain.SourceLabelZendesk, 75),
		mk("AB-4", "Dial Interface", domain.SourceLabelUnlabeled, 120),
	}
}

func TestParseWindow(t *testing.T) {
	for raw, want := range map[string]Window{
		"":    WindowAll,
		"all": WindowAll,
		"30d": Window30,
		"60d": Window60,
		"90d": Window90,
	} {
		window, err := ParseWindow(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, window)
	}

	_, err := ParseWindow("two weeks")
	assert.Error(t, err)
}

func TestFeatureAreaCountsUnfilteredMatchesReportGrouping(t *testing.T) {
	tickets := dataset()
	engine := NewEngine(tickets)

	got := engine.FeatureAreaCounts(Selection{Window: WindowAll, Source: SourceAll}, now)

	// Cross-check: with both selectors open, the client-side recompute
	// must equal the server-side full-set grouping.
	assert.Equal(t, report.FeatureAreaCounts(tickets), got)
}

func TestFeatureAreaCountsTimeWindow(t *testing.T) {
	engine := NewEngine(dataset())

	counts := engine.FeatureAreaCounts(Selection{Window: Window30, Source: SourceAll}, now)
	assert.Equal(t, []report.CategoryCount{{Value: "Schedules", Count: 1}}, counts)

	counts = engine.FeatureAreaCounts(Selection{Window: Window90, Source: SourceAll}, now)
	assert.Equal(t, []report.CategoryCount{
		{Value: "Schedules", Count: 2},
		{Value: "Lighting", Count: 1},
	}, counts)
}

func TestFeatureAreaCountsSourceSelector(t *testing.T) {
	engine := NewEngine(dataset())

	counts := engine.FeatureAreaCounts(Selection{Window: WindowAll, Source: "zendesk"}, now)
	assert.Equal(t, []report.CategoryCount{
		{Value: "Lighting", Count: 1},
		{Value: "Schedules", Count: 1},
	}, counts)
}

func TestFeatureAreaCountsCombinedSelectors(t *testing.T) {
	engine := NewEngine(dataset())

	counts := engine.FeatureAreaCounts(Selection{Window: Window60, Source: "zendesk"}, now)
	assert.Equal(t, []report.CategoryCount{{Value: "Schedules", Count: 1}}, counts)
}

func TestFeatureAreaCountsWindowMatchesManualFilter(t *testing.T) {
	tickets := dataset()
	engine := NewEngine(tickets)
	cutoff := now.AddDate(0, 0, -30)

	var subset []domain.Ticket
	for _, ticket := range tickets {
		if !ticket.CreatedAt.Before(cutoff) {
			subset = append(subset, ticket)
		}
	}

	got := engine.FeatureAreaCounts(Selection{Window: Window30, Source: SourceAll}, now)
	assert.Equal(t, report.FeatureAreaCounts(subset), got)
}

func TestEngineIsRestartable(t *testing.T) {
	engine := NewEngine(dataset())
	sel := Selection{Window: Window60, Source: SourceAll}

	first := engine.FeatureAreaCounts(sel, now)
	second := engine.FeatureAreaCounts(sel, now)

	// No incremental state: repeated recomputation yields identical
	// results.
	assert.Equal(t, first, second)
}
