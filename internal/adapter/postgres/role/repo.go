// Package role implements role assignment persistence using PostgreSQL.
package role

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/biokit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// Repo provides access to the user_roles table.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new role repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the role assigned to the user. A user without an assignment
// has domain.RoleUser.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var role string
	err := postgres.Get(ctx, q, &role, postgres.Builder.
		Select("role::text").
		From("user_roles").
		Where(sq.Eq{"user_id": userID}))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.RoleUser, nil
	}
	if err != nil {
		return "", postgres.MapError(err, "user_role", userID)
	}
	return domain.Role(role), nil
}

// Assign sets the user's role, replacing any existing assignment.
func (r *Repo) Assign(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, string(role)).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role"))
	if err != nil {
		return postgres.MapError(err, "user_role", userID)
	}
	return nil
}

// AssignIfMissing creates the assignment only when the user has none.
func (r *Repo) AssignIfMissing(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, string(role)).
		Suffix("ON CONFLICT (user_id) DO NOTHING"))
	if err != nil {
		return postgres.MapError(err, "user_role", userID)
	}
	return nil
}
