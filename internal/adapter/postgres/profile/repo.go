// Package profile implements the biography profile repository using PostgreSQL.
package profile

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

const table = "bio_profiles"

var columns = []string{
	"id", "owner_id", "type", "name", "job_title", "website", "bio_notes",
	"social_links", "slug", "main_image", "published", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Type        string    `db:"type"`
	Name        string    `db:"name"`
	JobTitle    string    `db:"job_title"`
	Website     string    `db:"website"`
	BioNotes    string    `db:"bio_notes"`
	SocialLinks []byte    `db:"social_links"`
	Slug        string    `db:"slug"`
	MainImage   *string   `db:"main_image"`
	Published   bool      `db:"published"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() (*domain.Profile, error) {
	links, err := domain.ParseSocialLinks(r.SocialLinks)
	if err != nil {
		return nil, err
	}
	return &domain.Profile{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Type:        domain.ProfileType(r.Type),
		Name:        r.Name,
		JobTitle:    r.JobTitle,
		Website:     r.Website,
		BioNotes:    r.BioNotes,
		SocialLinks: links,
		Slug:        r.Slug,
		MainImage:   r.MainImage,
		Published:   r.Published,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new profile and returns the stored row.
func (r *Repo) Create(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Insert(table).
		Columns("id", "owner_id", "type", "name", "job_title", "website", "bio_notes", "social_links", "slug", "main_image").
		Values(id, p.OwnerID, string(p.Type), p.Name, p.JobTitle, p.Website, p.BioNotes, p.SocialLinks.JSON(), p.Slug, p.MainImage).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.Slug)
	}
	return dst.toDomain()
}

// GetByID returns a profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetPublishedBySlug returns a published profile. Unpublished and missing
// profiles both yield domain.ErrNotFound.
func (r *Repo) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Profile, error) {
	return r.getOne(ctx, sq.Eq{"slug": slug, "published": true}, slug)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key any) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	if err := postgres.Get(ctx, q, &dst, postgres.Builder.Select(columns...).From(table).Where(where)); err != nil {
		return nil, postgres.MapError(err, "profile", key)
	}
	return dst.toDomain()
}

// ListByOwner returns the owner's profiles, most recently updated first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC", "id"))
	if err != nil {
		return nil, postgres.MapError(err, "profile", ownerID)
	}

	out := make([]domain.Profile, 0, len(rows))
	for _, rw := range rows {
		p, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// Update applies the non-nil fields of u and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, u domain.ProfileUpdate) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)
	if u.Type != nil {
		b = b.Set("type", string(*u.Type))
	}
	if u.Name != nil {
		b = b.Set("name", *u.Name)
	}
	if u.JobTitle != nil {
		b = b.Set("job_title", *u.JobTitle)
	}
	if u.Website != nil {
		b = b.Set("website", *u.Website)
	}
	if u.BioNotes != nil {
		b = b.Set("bio_notes", *u.BioNotes)
	}
	if u.SocialLinks != nil {
		b = b.Set("social_links", u.SocialLinks.JSON())
	}
	if u.Slug != nil {
		b = b.Set("slug", *u.Slug)
	}
	if u.MainImage != nil {
		b = b.Set("main_image", *u.MainImage)
	}

	var dst row
	if err := postgres.Get(ctx, q, &dst, b); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return dst.toDomain()
}

// SetPublished sets the published flag.
func (r *Repo) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var dst row
	err := postgres.Get(ctx, q, &dst, postgres.Builder.
		Update(table).
		Set("published", published).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return dst.toDomain()
}

// Delete removes the profile. Dependent rows go with it through FK cascades.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "profile", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "profile", id)
	}
	return nil
}

// Count returns the total number of profiles.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := postgres.Get(ctx, q, &n, postgres.Builder.Select("count(*)").From(table)); err != nil {
		return 0, postgres.MapError(err, "profile", "count")
	}
	return n, nil
}
