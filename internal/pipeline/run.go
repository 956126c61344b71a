// Package pipeline runs one batch ingestion pass: fetch, normalize,
// aggregate, export. No processing state survives between runs.
package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/feedback-insights/internal/config"
	"github.com/spec-kit/feedback-insights/internal/domain"
	"github.com/spec-kit/feedback-insights/internal/linear"
	"github.com/spec-kit/feedback-insights/internal/persistence"
	"github.com/spec-kit/feedback-insights/internal/report"
)

// Artifact file names under the output directory.
const (
	CSVFileName        = "customer_feedback.csv"
	StatisticsFileName = "statistics.json"
	SnapshotFileName   = "snapshot.json"
)

// Dependencies bundles collaborators for the runner.
type Dependencies struct {
	Fetcher   *linear.Fetcher
	Snapshots *persistence.SnapshotStore
	Logger    *zap.Logger
}

// Runner executes the batch pipeline end to end.
type Runner struct {
	fetcher   *linear.Fetcher
	snapshots *persistence.SnapshotStore
	linearCfg config.LinearConfig
	outputDir string
	logger    *zap.Logger
}

// NewRunner constructs the runner.
func NewRunner(cfg *config.Config, deps Dependencies) *Runner {
	return &Runner{
		fetcher:   deps.Fetcher,
		snapshots: deps.Snapshots,
		linearCfg: cfg.Linear,
		outputDir: cfg.Output.Dir,
		logger:    deps.Logger,
	}
}

// Result summarizes one successful run.
type Result struct {
	RunID           string
	TicketCount     int
	CustomerTickets int
	Statistics      report.Statistics
	Snapshot        report.Snapshot
}

// Run executes one pipeline pass. Any fetch failure aborts before any
// artifact is written; a successful run writes the CSV, the statistics
// document and the snapshot, then publishes the snapshot for the API.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With(zap.String("run_id", runID))
	now := time.Now().UTC()

	logger.Info("fetching issues",
		zap.String("team_id", r.linearCfg.TeamID),
		zap.Time("created_after", r.linearCfg.Window(now)),
	)
	issues, err := r.fetcher.FetchIssues(ctx, r.linearCfg.Window(now))
	if err != nil {
		return nil, err
	}
	rawProjects, err := r.fetcher.FetchProjects(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("fetched", zap.Int("issues", len(issues)), zap.Int("projects", len(rawProjects)))

	tickets := NormalizeAll(issues)
	projects := convertProjects(rawProjects)
	views := report.BuildViews(tickets, now)
	stats := report.BuildStatistics(views, now)
	snapshot := report.BuildSnapshot(runID, tickets, projects, now)

	if err := report.WriteCSV(filepath.Join(r.outputDir, CSVFileName), views.Customer); err != nil {
		return nil, err
	}
	if err := report.WriteStatistics(filepath.Join(r.outputDir, StatisticsFileName), stats); err != nil {
		return nil, err
	}
	if err := report.WriteSnapshot(filepath.Join(r.outputDir, SnapshotFileName), snapshot); err != nil {
		return nil, err
	}

	if r.snapshots != nil {
		if err := r.snapshots.Publish(ctx, snapshot); err != nil {
			logger.Warn("snapshot publish failed; file artifact remains authoritative", zap.Error(err))
		}
	}

	logger.Info("run complete",
		zap.Int("total_tickets", len(tickets)),
		zap.Int("customer_tickets", len(views.Customer)),
		zap.Int("unique_customers", stats.UniqueCustomers),
		zap.Int("feature_areas", len(stats.ByFeatureArea)),
	)

	return &Result{
		RunID:           runID,
		TicketCount:     len(tickets),
		CustomerTickets: len(views.Customer),
		Statistics:      stats,
		Snapshot:        snapshot,
	}, nil
}

func convertProjects(raw []linear.Project) []domain.Project {
	projects := make([]domain.Project, 0, len(raw))
	for _, project := range raw {
		projects = append(projects, domain.Project{
			ID:          project.ID,
			Name:        project.Name,
			Description: project.Description,
			Icon:        project.Icon,
		})
	}
	return projects
}
