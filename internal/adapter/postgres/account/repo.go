// Package account implements the Account repository using PostgreSQL.
package account

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

const table = "accounts"

var columns = []string{
	"id", "email", "full_name", "company_name", "avatar_url", "subscription_plan",
	"profile_count", "profile_limit", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID               uuid.UUID `db:"id"`
	Email            string    `db:"email"`
	FullName         string    `db:"full_name"`
	CompanyName      string    `db:"company_name"`
	AvatarURL        *string   `db:"avatar_url"`
	SubscriptionPlan string    `db:"subscription_plan"`
	ProfileCount     int       `db:"profile_count"`
	ProfileLimit     int       `db:"profile_limit"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Account {
	return &domain.Account{
		ID:               r.ID,
		Email:            r.Email,
		FullName:         r.FullName,
		CompanyName:      r.CompanyName,
		AvatarURL:        r.AvatarURL,
		SubscriptionPlan: domain.Plan(r.SubscriptionPlan),
		ProfileCount:     r.ProfileCount,
		ProfileLimit:     r.ProfileLimit,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return dst.toDomain(), nil
}

// GetByEmail returns the account with the given email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Select(columns...).
		From(table).
		Where("lower(email) = lower(?)", email).
		OrderBy("created_at").
		Limit(1))
	if err != nil {
		return nil, postgres.MapError(err, "account", email)
	}
	return dst.toDomain(), nil
}

// Create inserts the account. An existing row with the same id is left
// untouched and returned instead.
func (r *Repo) Create(ctx context.Context, a domain.Account) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert(table).
		Columns("id", "email", "full_name", "company_name", "avatar_url", "subscription_plan", "profile_limit").
		Values(a.ID, a.Email, a.FullName, a.CompanyName, a.AvatarURL, string(a.SubscriptionPlan), a.ProfileLimit).
		Suffix("ON CONFLICT (id) DO NOTHING"))
	if err != nil {
		return nil, postgres.MapError(err, "account", a.ID)
	}
	return r.GetByID(ctx, a.ID)
}

// UpdateSettings changes the non-nil profile fields of the account.
func (r *Repo) UpdateSettings(ctx context.Context, id uuid.UUID, fullName, companyName *string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)
	if fullName != nil {
		b = b.Set("full_name", *fullName)
	}
	if companyName != nil {
		b = b.Set("company_name", *companyName)
	}

	var dst row
	if err := postgres.Get(ctx, q, &dst, b); err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return dst.toDomain(), nil
}

// UpdatePlan sets the subscription plan and its profile limit.
func (r *Repo) UpdatePlan(ctx context.Context, id uuid.UUID, plan domain.Plan, limit int) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Update(table).
		Set("subscription_plan", string(plan)).
		Set("profile_limit", limit).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return dst.toDomain(), nil
}

// ReserveProfileSlot increments profile_count only while it is below
// profile_limit. It reports false when the account is at its limit.
func (r *Repo) ReserveProfileSlot(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Update(table).
		Set("profile_count", sq.Expr("profile_count + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where("profile_count < profile_limit"))
	if err != nil {
		return false, postgres.MapError(err, "account", id)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseProfileSlot decrements profile_count, never below zero.
func (r *Repo) ReleaseProfileSlot(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Update(table).
		Set("profile_count", sq.Expr("GREATEST(profile_count - 1, 0)")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "account", id)
	}
	return nil
}

type withRoleRow struct {
	row
	Role string `db:"role"`
}

// List returns accounts with their role, newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.AccountWithRole, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cols := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		cols = append(cols, "a."+c)
	}
	cols = append(cols, "COALESCE(ur.role::text, 'user') AS role")

	var rows []withRoleRow
	err := postgres.Select(ctx, q, &rows, postgres.Builder.
		Select(cols...).
		From(table+" a").
		LeftJoin("user_roles ur ON ur.user_id = a.id").
		OrderBy("a.created_at DESC", "a.id").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
	if err != nil {
		return nil, postgres.MapError(err, "account", "list")
	}

	out := make([]domain.AccountWithRole, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.AccountWithRole{Account: *rw.toDomain(), Role: domain.Role(rw.Role)})
	}
	return out, nil
}

// Count returns the total number of accounts.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := postgres.Get(ctx, q, &n, postgres.Builder.Select("count(*)").From(table)); err != nil {
		return 0, postgres.MapError(err, "account", "count")
	}
	return n, nil
}
