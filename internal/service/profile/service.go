// Package profile manages biography profiles and their read-only views.
package profile

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

//go:generate moq -out mock_test.go . accountRepo profileRepo biographyRepo pressKitRepo analyticsRepo txManager

type accountRepo interface {
	ReserveProfileSlot(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseProfileSlot(ctx context.Context, id uuid.UUID) error
}

type profileRepo interface {
	Create(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, u domain.ProfileUpdate) (*domain.Profile, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*domain.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type biographyRepo interface {
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Biography, error)
}

type pressKitRepo interface {
	SyncSlug(ctx context.Context, profileID uuid.UUID, profileSlug string) error
}

type analyticsRepo interface {
	ListByProfile(ctx context.Context, profileID uuid.UUID, since time.Time) ([]domain.DailyViews, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile CRUD and the owner-facing read views.
type Service struct {
	log        *slog.Logger
	accounts   accountRepo
	profiles   profileRepo
	bios       biographyRepo
	kits       pressKitRepo
	analytics  analyticsRepo
	tx         txManager
	now        func() time.Time
	slugSuffix func() string
}

// NewService creates a new profile service.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	profiles profileRepo,
	bios biographyRepo,
	kits pressKitRepo,
	analytics analyticsRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "profile"),
		accounts:   accounts,
		profiles:   profiles,
		bios:       bios,
		kits:       kits,
		analytics:  analytics,
		tx:         tx,
		now:        time.Now,
		slugSuffix: randomSuffix,
	}
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomSuffix returns six random lowercase alphanumerics.
func randomSuffix() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = suffixAlphabet[int(b[i])%len(suffixAlphabet)]
	}
	return string(b)
}
