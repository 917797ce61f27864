// Package biography implements the biography repository using PostgreSQL.
package biography

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/biokit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

const table = "biographies"

var columns = []string{
	"id", "profile_id", "bio_type", "tone", "content", "is_locked",
	"generated_at", "created_at", "updated_at",
}

type row struct {
	ID          uuid.UUID `db:"id"`
	ProfileID   uuid.UUID `db:"profile_id"`
	BioType     string    `db:"bio_type"`
	Tone        string    `db:"tone"`
	Content     string    `db:"content"`
	IsLocked    bool      `db:"is_locked"`
	GeneratedAt time.Time `db:"generated_at"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Biography {
	return domain.Biography{
		ID:          r.ID,
		ProfileID:   r.ProfileID,
		Type:        domain.BioType(r.BioType),
		Tone:        domain.Tone(r.Tone),
		Content:     r.Content,
		IsLocked:    r.IsLocked,
		GeneratedAt: r.GeneratedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides biography persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new biography repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert stores the biography for (ProfileID, Type). An existing row keeps
// its id and created_at; content, tone and generated_at are replaced.
func (r *Repo) Upsert(ctx context.Context, b domain.Biography) (*domain.Biography, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	generatedAt := b.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Insert(table).
		Columns("profile_id", "bio_type", "tone", "content", "generated_at").
		Values(b.ProfileID, string(b.Type), string(b.Tone), b.Content, generatedAt).
		Suffix(`ON CONFLICT (profile_id, bio_type) DO UPDATE
			SET tone = EXCLUDED.tone,
			    content = EXCLUDED.content,
			    generated_at = EXCLUDED.generated_at,
			    updated_at = now()
			RETURNING ` + strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "biography", b.ProfileID)
	}

	out := dst.toDomain()
	return &out, nil
}

// ListByProfile returns the profile's biographies, most recently generated first.
func (r *Repo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Biography, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("generated_at DESC", "id"))
	if err != nil {
		return nil, postgres.MapError(err, "biography", profileID)
	}

	out := make([]domain.Biography, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}
