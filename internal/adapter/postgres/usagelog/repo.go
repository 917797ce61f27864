// Package usagelog implements the append-only completion usage log using PostgreSQL.
package usagelog

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/biokit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

const table = "ai_request_logs"

type row struct {
	ID              uuid.UUID  `db:"id"`
	UserID          uuid.UUID  `db:"user_id"`
	ProfileID       *uuid.UUID `db:"profile_id"`
	Action          string     `db:"action"`
	Status          string     `db:"status"`
	TokensUsed      int        `db:"tokens_used"`
	RawPrompt       string     `db:"raw_prompt"`
	ResponseSummary string     `db:"response_summary"`
	CreatedAt       time.Time  `db:"created_at"`
}

// Repo provides usage log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new usage log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one entry.
func (r *Repo) Create(ctx context.Context, e domain.UsageLogEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	status := e.Status
	if status == "" {
		status = domain.UsageStatusSuccess
	}

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert(table).
		Columns("user_id", "profile_id", "action", "status", "tokens_used", "raw_prompt", "response_summary").
		Values(e.UserID, e.ProfileID, e.Action, string(status), e.TokensUsed, e.RawPrompt, e.ResponseSummary))
	if err != nil {
		return postgres.MapError(err, "usage_log", e.UserID)
	}
	return nil
}

// ListByUser returns the user's most recent entries, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UsageLogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder.
		Select("id", "user_id", "profile_id", "action", "status::text AS status", "tokens_used", "raw_prompt", "response_summary", "created_at").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)))
	if err != nil {
		return nil, postgres.MapError(err, "usage_log", userID)
	}

	out := make([]domain.UsageLogEntry, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.UsageLogEntry{
			ID:              rw.ID,
			UserID:          rw.UserID,
			ProfileID:       rw.ProfileID,
			Action:          rw.Action,
			Status:          domain.UsageStatus(rw.Status),
			TokensUsed:      rw.TokensUsed,
			RawPrompt:       rw.RawPrompt,
			ResponseSummary: rw.ResponseSummary,
			CreatedAt:       rw.CreatedAt,
		})
	}
	return out, nil
}

// Count returns the total number of entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := postgres.Get(ctx, q, &n, postgres.Builder.Select("count(*)").From(table)); err != nil {
		return 0, postgres.MapError(err, "usage_log", "count")
	}
	return n, nil
}
