// Package presskit implements press kit persistence using PostgreSQL.
package presskit

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

const table = "press_kits"

var columns = []string{
	"id", "profile_id", "slug", "include_short_bio", "include_long_bio",
	"include_images", "include_contacts", "is_published", "views_count",
	"downloads_count", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID              uuid.UUID `db:"id"`
	ProfileID       uuid.UUID `db:"profile_id"`
	Slug            string    `db:"slug"`
	IncludeShortBio bool      `db:"include_short_bio"`
	IncludeLongBio  bool      `db:"include_long_bio"`
	IncludeImages   bool      `db:"include_images"`
	IncludeContacts bool      `db:"include_contacts"`
	IsPublished     bool      `db:"is_published"`
	ViewsCount      int64     `db:"views_count"`
	DownloadsCount  int64     `db:"downloads_count"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.PressKit {
	return &domain.PressKit{
		ID:        r.ID,
		ProfileID: r.ProfileID,
		Slug:      r.Slug,
		PressKitSettings: domain.PressKitSettings{
			IncludeShortBio: r.IncludeShortBio,
			IncludeLongBio:  r.IncludeLongBio,
			IncludeImages:   r.IncludeImages,
			IncludeContacts: r.IncludeContacts,
		},
		IsPublished:    r.IsPublished,
		ViewsCount:     r.ViewsCount,
		DownloadsCount: r.DownloadsCount,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Repo provides press kit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new press kit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert creates the profile's press kit or updates its slug, settings and
// published flag. Counters are preserved.
func (r *Repo) Upsert(ctx context.Context, k domain.PressKit) (*domain.PressKit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Insert(table).
		Columns("profile_id", "slug", "include_short_bio", "include_long_bio", "include_images", "include_contacts", "is_published").
		Values(k.ProfileID, k.Slug, k.IncludeShortBio, k.IncludeLongBio, k.IncludeImages, k.IncludeContacts, k.IsPublished).
		Suffix(`ON CONFLICT (profile_id) DO UPDATE
			SET slug = EXCLUDED.slug,
			    include_short_bio = EXCLUDED.include_short_bio,
			    include_long_bio = EXCLUDED.include_long_bio,
			    include_images = EXCLUDED.include_images,
			    include_contacts = EXCLUDED.include_contacts,
			    is_published = EXCLUDED.is_published,
			    updated_at = now()
			` + returning))
	if err != nil {
		return nil, postgres.MapError(err, "press_kit", k.ProfileID)
	}
	return dst.toDomain(), nil
}

// GetByProfile returns the profile's press kit.
func (r *Repo) GetByProfile(ctx context.Context, profileID uuid.UUID) (*domain.PressKit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"profile_id": profileID}))
	if err != nil {
		return nil, postgres.MapError(err, "press_kit", profileID)
	}
	return dst.toDomain(), nil
}

// SetPublished flips the published flag of the profile's kit.
func (r *Repo) SetPublished(ctx context.Context, profileID uuid.UUID, published bool) (*domain.PressKit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Update(table).
		Set("is_published", published).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"profile_id": profileID}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "press_kit", profileID)
	}
	return dst.toDomain(), nil
}

// SyncSlug points the profile's kit at the slug derived from profileSlug.
// A profile without a kit is left alone.
func (r *Repo) SyncSlug(ctx context.Context, profileID uuid.UUID, profileSlug string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Update(table).
		Set("slug", domain.PressKitSlug(profileSlug)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"profile_id": profileID}))
	if err != nil {
		return postgres.MapError(err, "press_kit", profileID)
	}
	return nil
}

// TrackView increments views_count of a published kit and returns the kit
// with the new count. Unpublished and missing kits yield domain.ErrNotFound.
func (r *Repo) TrackView(ctx context.Context, slug string) (*domain.PressKit, error) {
	return r.increment(ctx, slug, "views_count")
}

// TrackDownload increments downloads_count of a published kit.
func (r *Repo) TrackDownload(ctx context.Context, slug string) (*domain.PressKit, error) {
	return r.increment(ctx, slug, "downloads_count")
}

func (r *Repo) increment(ctx context.Context, slug, counter string) (*domain.PressKit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Update(table).
		Set(counter, sq.Expr(counter+" + 1")).
		Where(sq.Eq{"slug": slug, "is_published": true}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "press_kit", slug)
	}
	return dst.toDomain(), nil
}
