// Package billing implements the append-only billing history using PostgreSQL.
package billing

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/biokit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

const table = "billing_history"

var columns = []string{
	"id", "user_id", "amount::float8 AS amount", "currency", "description",
	"external_transaction_id", "status", "created_at",
}

type row struct {
	ID                    uuid.UUID `db:"id"`
	UserID                uuid.UUID `db:"user_id"`
	Amount                *float64  `db:"amount"`
	Currency              string    `db:"currency"`
	Description           string    `db:"description"`
	ExternalTransactionID string    `db:"external_transaction_id"`
	Status                string    `db:"status"`
	CreatedAt             time.Time `db:"created_at"`
}

func (r row) toDomain() domain.BillingRecord {
	return domain.BillingRecord{
		ID:                    r.ID,
		UserID:                r.UserID,
		Amount:                r.Amount,
		Currency:              r.Currency,
		Description:           r.Description,
		ExternalTransactionID: r.ExternalTransactionID,
		Status:                r.Status,
		CreatedAt:             r.CreatedAt,
	}
}

// Repo provides billing history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new billing repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one record and returns it.
func (r *Repo) Create(ctx context.Context, rec domain.BillingRecord) (*domain.BillingRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	currency := rec.Currency
	if currency == "" {
		currency = "USD"
	}
	status := rec.Status
	if status == "" {
		status = "pending"
	}

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Insert(table).
		Columns("user_id", "amount", "currency", "description", "external_transaction_id", "status").
		Values(rec.UserID, rec.Amount, currency, rec.Description, rec.ExternalTransactionID, status).
		Suffix("RETURNING id, user_id, amount::float8 AS amount, currency, description, external_transaction_id, status, created_at"))
	if err != nil {
		return nil, postgres.MapError(err, "billing_record", rec.UserID)
	}
	out := dst.toDomain()
	return &out, nil
}

// ListByUser returns the user's latest records, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.BillingRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)))
	if err != nil {
		return nil, postgres.MapError(err, "billing_record", userID)
	}

	out := make([]domain.BillingRecord, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}
