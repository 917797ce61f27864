// Package analytics implements daily profile view counters using PostgreSQL.
package analytics

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/biokit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

const table = "profile_analytics"

type row struct {
	ProfileID      uuid.UUID `db:"profile_id"`
	ViewDate       time.Time `db:"view_date"`
	ViewsCount     int       `db:"views_count"`
	UniqueVisitors int       `db:"unique_visitors"`
}

// Repo provides profile analytics persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// RecordView adds one view to the profile's counter for day. unique also
// bumps the unique-visitor counter.
func (r *Repo) RecordView(ctx context.Context, profileID uuid.UUID, day time.Time, unique bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	uniqueInc := 0
	if unique {
		uniqueInc = 1
	}

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert(table).
		Columns("profile_id", "view_date", "views_count", "unique_visitors").
		Values(profileID, dateOf(day), 1, uniqueInc).
		Suffix(`ON CONFLICT (profile_id, view_date) DO UPDATE
			SET views_count = profile_analytics.views_count + 1,
			    unique_visitors = profile_analytics.unique_visitors + EXCLUDED.unique_visitors`))
	if err != nil {
		return postgres.MapError(err, "profile_analytics", profileID)
	}
	return nil
}

// ListByProfile returns daily counters on or after since, newest day first.
func (r *Repo) ListByProfile(ctx context.Context, profileID uuid.UUID, since time.Time) ([]domain.DailyViews, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder.
		Select("profile_id", "view_date", "views_count", "unique_visitors").
		From(table).
		Where(sq.Eq{"profile_id": profileID}).
		Where(sq.GtOrEq{"view_date": dateOf(since)}).
		OrderBy("view_date DESC"))
	if err != nil {
		return nil, postgres.MapError(err, "profile_analytics", profileID)
	}

	out := make([]domain.DailyViews, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.DailyViews{
			ProfileID:      rw.ProfileID,
			Date:           rw.ViewDate,
			Views:          rw.ViewsCount,
			UniqueVisitors: rw.UniqueVisitors,
		})
	}
	return out, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
