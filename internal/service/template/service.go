// Package template serves the read-only biography template catalogue.
package template

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

//go:generate moq -out mock_test.go . templateRepo

type templateRepo interface {
	List(ctx context.Context, templateType string) ([]domain.Template, error)
}

// Service implements template operations.
type Service struct {
	log       *slog.Logger
	templates templateRepo
}

// NewService creates a new template service.
func NewService(logger *slog.Logger, templates templateRepo) *Service {
	return &Service{
		log:       logger.With("service", "template"),
		templates: templates,
	}
}

// ListTemplates returns the catalogue, optionally narrowed to one template
// type. Premium templates are listed for every authenticated caller.
func (s *Service) ListTemplates(ctx context.Context, caller domain.Caller, templateType string) ([]domain.Template, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	templateType = strings.ToLower(strings.TrimSpace(templateType))
	if len(templateType) > 50 {
		return nil, domain.NewValidationError("type", "too long")
	}

	list, err := s.templates.List(ctx, templateType)
	if err != nil {
		return nil, fmt.Errorf("template.ListTemplates: %w", err)
	}
	return list, nil
}
