package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/feedback-insights/internal/config"
	"github.com/spec-kit/feedback-insights/internal/linear"
	"github.com/spec-kit/feedback-insights/internal/observability"
	"github.com/spec-kit/feedback-insights/internal/persistence"
	"github.com/spec-kit/feedback-insights/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	client := linear.NewClient(cfg.Linear, logger)
	fetcher := linear.NewFetcher(client, cfg.Linear, logger)

	runner := pipeline.NewRunner(cfg, pipeline.Dependencies{
		Fetcher:   fetcher,
		Snapshots: persistence.NewSnapshotStore(redis),
		Logger:    logger,
	})

	result, err := runner.Run(ctx)
	if err != nil {
		logger.Fatal("pipeline run failed", zap.Error(err))
	}

	logger.Info("artifacts written",
		zap.String("run_id", result.RunID),
		zap.String("output_dir", cfg.Output.Dir),
	)
}
