// Package publication implements press kits and the anonymous public views.
package publication

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

//go:generate moq -out mock_test.go . profileRepo biographyRepo snippetRepo pressKitRepo analyticsRepo visitorTracker

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Profile, error)
}

type biographyRepo interface {
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Biography, error)
}

type snippetRepo interface {
	GetByProfile(ctx context.Context, profileID uuid.UUID) (*domain.SchemaSnippet, error)
}

type pressKitRepo interface {
	Upsert(ctx context.Context, k domain.PressKit) (*domain.PressKit, error)
	GetByProfile(ctx context.Context, profileID uuid.UUID) (*domain.PressKit, error)
	SetPublished(ctx context.Context, profileID uuid.UUID, published bool) (*domain.PressKit, error)
	TrackView(ctx context.Context, slug string) (*domain.PressKit, error)
	TrackDownload(ctx context.Context, slug string) (*domain.PressKit, error)
}

type analyticsRepo interface {
	RecordView(ctx context.Context, profileID uuid.UUID, day time.Time, unique bool) error
}

type visitorTracker interface {
	FirstVisit(ctx context.Context, profileID uuid.UUID, visitor string, day time.Time) (bool, error)
}

// Service implements publication operations.
type Service struct {
	log       *slog.Logger
	profiles  profileRepo
	bios      biographyRepo
	snippets  snippetRepo
	kits      pressKitRepo
	analytics analyticsRepo
	visitors  visitorTracker
	now       func() time.Time
}

// NewService creates a new publication service.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	bios biographyRepo,
	snippets snippetRepo,
	kits pressKitRepo,
	analytics analyticsRepo,
	visitors visitorTracker,
) *Service {
	return &Service{
		log:       logger.With("service", "publication"),
		profiles:  profiles,
		bios:      bios,
		snippets:  snippets,
		kits:      kits,
		analytics: analytics,
		visitors:  visitors,
		now:       time.Now,
	}
}
