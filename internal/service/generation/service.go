// Package generation produces biography variants through the completion
// collaborator and stores them.
package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

//go:generate moq -out mock_test.go . profileRepo biographyRepo usageRepo completer recorder

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type biographyRepo interface {
	Upsert(ctx context.Context, b domain.Biography) (*domain.Biography, error)
}

type usageRepo interface {
	Create(ctx context.Context, e domain.UsageLogEntry) error
}

type completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error)
}

type recorder interface {
	ObserveVariant(kind string, ok bool, tokens int, elapsed time.Duration)
}

// Service orchestrates biography generation.
type Service struct {
	log       *slog.Logger
	profiles  profileRepo
	bios      biographyRepo
	usage     usageRepo
	llm       completer
	metrics   recorder
	maxTokens int
	now       func() time.Time
}

// NewService creates a new generation service. maxTokens is the completion
// budget of each variant.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	bios biographyRepo,
	usage usageRepo,
	llm completer,
	metrics recorder,
	maxTokens int,
) *Service {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Service{
		log:       logger.With("service", "generation"),
		profiles:  profiles,
		bios:      bios,
		usage:     usage,
		llm:       llm,
		metrics:   metrics,
		maxTokens: maxTokens,
		now:       time.Now,
	}
}
