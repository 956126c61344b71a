package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/feedback-insights/internal/config"
	"github.com/spec-kit/feedback-insights/internal/report"
)

const snapshotKey = "feedback:snapshot:latest"

// ErrNoSnapshot is returned when no run has published a snapshot yet.
var ErrNoSnapshot = errors.New("no snapshot published")

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. An
// unreachable Redis is a warning here; callers decide how hard to fail.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// SnapshotStore hands the latest run snapshot from the pipeline to the
// API server. It is an ephemeral cache, not a durable store: the file
// artifacts remain the source of truth for a run.
type SnapshotStore struct {
	redis *Redis
}

// NewSnapshotStore wraps a Redis connection.
func NewSnapshotStore(r *Redis) *SnapshotStore {
	return &SnapshotStore{redis: r}
}

// Publish replaces the latest snapshot.
func (s *SnapshotStore) Publish(ctx context.Context, snapshot report.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.redis.Client.Set(ctx, snapshotKey, payload, 0).Err()
}

// Latest returns the most recently published snapshot, or ErrNoSnapshot.
func (s *SnapshotStore) Latest(ctx context.Context) (*report.Snapshot, error) {
	payload, err := s.redis.Client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	var snapshot report.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
