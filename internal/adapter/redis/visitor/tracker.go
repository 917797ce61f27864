// Package visitor deduplicates public profile visitors per day in Redis.
package visitor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/biokit-backend/internal/config"
)

// NewClient connects to Redis and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// Tracker remembers which visitors have seen a profile on a given day.
type Tracker struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// New creates a tracker. Keys expire after ttl.
func New(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *Tracker {
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}
	return &Tracker{
		rdb: rdb,
		ttl: ttl,
		log: logger.With("adapter", "visitor_tracker"),
	}
}

// FirstVisit reports whether visitor has not been seen on profileID during
// day. Visitor ids are hashed before they reach Redis. An empty visitor is
// never unique.
func (t *Tracker) FirstVisit(ctx context.Context, profileID uuid.UUID, visitor string, day time.Time) (bool, error) {
	if visitor == "" {
		return false, nil
	}

	ok, err := t.rdb.SetNX(ctx, Key(profileID, visitor, day), 1, t.ttl).Result()
	if err != nil {
		t.log.WarnContext(ctx, "visitor tracking failed",
			slog.String("profile_id", profileID.String()),
			slog.String("error", err.Error()))
		return false, fmt.Errorf("visitor: setnx: %w", err)
	}
	return ok, nil
}

// Key builds the Redis key for one visitor of one profile on one day.
func Key(profileID uuid.UUID, visitor string, day time.Time) string {
	sum := sha256.Sum256([]byte(visitor))
	return fmt.Sprintf("visit:%s:%s:%s", profileID, day.UTC().Format(time.DateOnly), hex.EncodeToString(sum[:12]))
}

// Noop never reports a visitor as new. It stands in when Redis is not configured.
type Noop struct{}

// FirstVisit always returns false.
func (Noop) FirstVisit(context.Context, uuid.UUID, string, time.Time) (bool, error) {
	return false, nil
}
