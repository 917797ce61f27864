package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/service/access"
)

// ValidMessage is stored with every snippet that passed validation.
const ValidMessage = "Valid JSON-LD"

// GenerateSchema builds the profile's JSON-LD and stores it as the profile's
// single snippet, replacing any previous one.
func (s *Service) GenerateSchema(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.SchemaSnippet, error) {
	p, err := s.owned(ctx, caller, profileID)
	if err != nil {
		return nil, fmt.Errorf("schema.GenerateSchema: %w", err)
	}

	doc, err := Build(*p)
	if err != nil {
		return nil, fmt.Errorf("schema.GenerateSchema: %w", err)
	}
	if !json.Valid([]byte(doc.Text)) {
		return nil, fmt.Errorf("schema.GenerateSchema: rendered document is not valid JSON")
	}

	snippet, err := s.snippets.Upsert(ctx, domain.SchemaSnippet{
		ProfileID:         p.ID,
		SchemaType:        doc.Type,
		SchemaText:        doc.Text,
		Validated:         true,
		ValidationMessage: ValidMessage,
	})
	if err != nil {
		return nil, fmt.Errorf("schema.GenerateSchema: %w", err)
	}

	s.log.InfoContext(ctx, "schema generated",
		slog.String("profile_id", p.ID.String()),
		slog.String("schema_type", doc.Type.String()),
	)
	return snippet, nil
}

// GetSchema returns the stored snippet of a profile.
func (s *Service) GetSchema(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.SchemaSnippet, error) {
	if _, err := s.owned(ctx, caller, profileID); err != nil {
		return nil, fmt.Errorf("schema.GetSchema: %w", err)
	}

	snippet, err := s.snippets.GetByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("schema.GetSchema: %w", err)
	}
	return snippet, nil
}

func (s *Service) owned(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.Profile, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwner(caller, p.OwnerID); err != nil {
		return nil, err
	}
	return p, nil
}
