// Package schema builds and stores the JSON-LD snippet of a profile.
package schema

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

//go:generate moq -out mock_test.go . profileRepo snippetRepo

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type snippetRepo interface {
	Upsert(ctx context.Context, s domain.SchemaSnippet) (*domain.SchemaSnippet, error)
	GetByProfile(ctx context.Context, profileID uuid.UUID) (*domain.SchemaSnippet, error)
}

// Service implements schema snippet generation.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	snippets snippetRepo
}

// NewService creates a new schema service.
func NewService(logger *slog.Logger, profiles profileRepo, snippets snippetRepo) *Service {
	return &Service{
		log:      logger.With("service", "schema"),
		profiles: profiles,
		snippets: snippets,
	}
}
