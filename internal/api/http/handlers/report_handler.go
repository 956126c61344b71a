package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-insights/internal/api/dto"
	"github.com/spec-kit/feedback-insights/internal/filter"
	"github.com/spec-kit/feedback-insights/internal/observability"
	"github.com/spec-kit/feedback-insights/internal/persistence"
	"github.com/spec-kit/feedback-insights/internal/report"
	"github.com/spec-kit/feedback-insights/pkg/util"
)

// ReportHandler serves the published dataset snapshot and its
// recomputed groupings. It never triggers a fetch from the tracker.
type ReportHandler struct {
	store   *persistence.SnapshotStore
	metrics *observability.Metrics
}

// NewReportHandler constructs the handler.
func NewReportHandler(store *persistence.SnapshotStore, metrics *observability.Metrics) *ReportHandler {
	return &ReportHandler{store: store, metrics: metrics}
}

// Statistics GET /api/report.
func (h *ReportHandler) Statistics(c *fiber.Ctx) error {
	snapshot, err := h.loadSnapshot(c)
	if err != nil {
		return err
	}
	views := report.BuildViews(snapshot.Tickets(), time.Now().UTC())
	stats := report.BuildStatistics(views, snapshot.LastUpdated)
	return c.JSON(fiber.Map{"data": dto.ReportResponse{
		RunID:       snapshot.RunID,
		Statistics:  stats,
		LastUpdated: snapshot.LastUpdated,
	}})
}

// Snapshot GET /api/snapshot.
func (h *ReportHandler) Snapshot(c *fiber.Ctx) error {
	snapshot, err := h.loadSnapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// Filter GET /api/filter?window=30d&source=zendesk.
func (h *ReportHandler) Filter(c *fiber.Ctx) error {
	window, err := filter.ParseWindow(c.Query("window"))
	if err != nil {
		return util.NewValidationError(err.Error(), nil)
	}
	source := c.Query("source", filter.SourceAll)

	snapshot, err := h.loadSnapshot(c)
	if err != nil {
		return err
	}

	h.metrics.RecordFilterQuery(string(window), source)
	engine := filter.NewEngine(snapshot.Tickets())
	areas := engine.FeatureAreaCounts(filter.Selection{Window: window, Source: source}, time.Now().UTC())

	return c.JSON(fiber.Map{"data": dto.FilterResponse{
		Window:      string(window),
		Source:      source,
		Areas:       areas,
		GeneratedAt: time.Now().UTC(),
	}})
}

func (h *ReportHandler) loadSnapshot(c *fiber.Ctx) (*report.Snapshot, error) {
	snapshot, err := h.store.Latest(c.Context())
	if errors.Is(err, persistence.ErrNoSnapshot) {
		return nil, util.NewSnapshotUnavailable(err)
	}
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	return snapshot, nil
}
