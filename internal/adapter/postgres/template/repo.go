// Package template implements the read-only template catalogue using PostgreSQL.
package template

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/biokit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

type row struct {
	ID           uuid.UUID `db:"id"`
	TemplateType string    `db:"template_type"`
	Name         string    `db:"name"`
	Content      string    `db:"content"`
	Tone         *string   `db:"tone"`
	Premium      bool      `db:"premium"`
	CreatedAt    time.Time `db:"created_at"`
}

// Repo reads the templates table.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new template repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns templates ordered by type and name. An empty templateType
// returns the whole catalogue.
func (r *Repo) List(ctx context.Context, templateType string) ([]domain.Template, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.
		Select("id", "template_type", "name", "content", "tone::text AS tone", "premium", "created_at").
		From("templates").
		OrderBy("template_type", "name")
	if templateType != "" {
		b = b.Where(sq.Eq{"template_type": templateType})
	}

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "template", templateType)
	}

	out := make([]domain.Template, 0, len(rows))
	for _, rw := range rows {
		t := domain.Template{
			ID:           rw.ID,
			TemplateType: rw.TemplateType,
			Name:         rw.Name,
			Content:      rw.Content,
			Premium:      rw.Premium,
			CreatedAt:    rw.CreatedAt,
		}
		if rw.Tone != nil {
			tone := domain.Tone(*rw.Tone)
			t.Tone = &tone
		}
		out = append(out, t)
	}
	return out, nil
}
