// Package auth validates bearer tokens and proxies password login to the
// external auth provider.
package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

//go:generate moq -out mock_test.go . sessionProvider tokenValidator callerResolver

// sessionProvider issues sessions. It is nil when password login is disabled.
type sessionProvider interface {
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	Refresh(ctx context.Context, refreshToken string) (domain.Session, error)
}

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Identity, error)
}

type callerResolver interface {
	Resolve(ctx context.Context, id domain.Identity) (domain.Caller, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	sessions sessionProvider
	tokens   tokenValidator
	callers  callerResolver
}

// NewService creates a new auth service. sessions may be nil.
func NewService(logger *slog.Logger, sessions sessionProvider, tokens tokenValidator, callers callerResolver) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		sessions: sessions,
		tokens:   tokens,
		callers:  callers,
	}
}
