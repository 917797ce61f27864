// Package snippet implements schema snippet persistence using PostgreSQL.
package snippet

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

const table = "schema_snippets"

var columns = []string{
	"id", "profile_id", "schema_type", "schema_text", "validated",
	"validation_message", "created_at", "updated_at",
}

type row struct {
	ID                uuid.UUID `db:"id"`
	ProfileID         uuid.UUID `db:"profile_id"`
	SchemaType        string    `db:"schema_type"`
	SchemaText        string    `db:"schema_text"`
	Validated         bool      `db:"validated"`
	ValidationMessage string    `db:"validation_message"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.SchemaSnippet {
	return &domain.SchemaSnippet{
		ID:                r.ID,
		ProfileID:         r.ProfileID,
		SchemaType:        domain.SchemaType(r.SchemaType),
		SchemaText:        r.SchemaText,
		Validated:         r.Validated,
		ValidationMessage: r.ValidationMessage,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// Repo provides schema snippet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new schema snippet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert stores the profile's single snippet, replacing any previous one.
func (r *Repo) Upsert(ctx context.Context, s domain.SchemaSnippet) (*domain.SchemaSnippet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Insert(table).
		Columns("profile_id", "schema_type", "schema_text", "validated", "validation_message").
		Values(s.ProfileID, string(s.SchemaType), s.SchemaText, s.Validated, s.ValidationMessage).
		Suffix(`ON CONFLICT (profile_id) DO UPDATE
			SET schema_type = EXCLUDED.schema_type,
			    schema_text = EXCLUDED.schema_text,
			    validated = EXCLUDED.validated,
			    validation_message = EXCLUDED.validation_message,
			    updated_at = now()
			RETURNING ` + strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "schema_snippet", s.ProfileID)
	}
	return dst.toDomain(), nil
}

// GetByProfile returns the profile's snippet.
func (r *Repo) GetByProfile(ctx context.Context, profileID uuid.UUID) (*domain.SchemaSnippet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"profile_id": profileID}))
	if err != nil {
		return nil, postgres.MapError(err, "schema_snippet", profileID)
	}
	return dst.toDomain(), nil
}
