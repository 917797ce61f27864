package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// ErrLoginDisabled is returned when no session provider is configured.
var ErrLoginDisabled = fmt.Errorf("password login is not configured: %w", domain.ErrCollaborator)

// Login exchanges email and password for a provider session and makes sure
// the account exists.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.sessions == nil {
		return nil, ErrLoginDisabled
	}

	sess, err := s.sessions.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.log.InfoContext(ctx, "login rejected", slog.String("email", input.Email))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if _, err := s.callers.Resolve(ctx, domain.Identity{UserID: sess.UserID, Email: sess.Email}); err != nil {
		return nil, fmt.Errorf("auth.Login: resolve: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", sess.UserID.String()))
	return &sess, nil
}

// Refresh rotates a provider session.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*domain.Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.sessions == nil {
		return nil, ErrLoginDisabled
	}

	sess, err := s.sessions.Refresh(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return &sess, nil
}

// Authenticate validates a bearer token and resolves the caller behind it.
// Any token problem is reported as ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (domain.Caller, error) {
	id, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return domain.Caller{}, domain.ErrUnauthorized
	}

	caller, err := s.callers.Resolve(ctx, id)
	if err != nil {
		return domain.Caller{}, fmt.Errorf("auth.Authenticate: %w", err)
	}
	return caller, nil
}
