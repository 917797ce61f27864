// Package gotrue proxies password login and token refresh to a GoTrue
// (Supabase Auth) server.
package gotrue

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	gotrue "github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	"github.com/heartmarshall/biokit-backend/internal/config"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// Client wraps the GoTrue token endpoint.
type Client struct {
	api gotrue.Client
	log *slog.Logger
}

// New creates a GoTrue client. An explicit URL wins over the project ref.
func New(cfg config.GoTrueConfig, logger *slog.Logger) *Client {
	api := gotrue.New(cfg.ProjectRef, cfg.APIKey)
	if cfg.URL != "" {
		api = api.WithCustomGoTrueURL(strings.TrimRight(cfg.URL, "/"))
	}
	return &Client{
		api: api,
		log: logger.With("adapter", "gotrue"),
	}
}

// WithHTTPClient returns a copy that sends requests through hc.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	return &Client{api: c.api.WithClient(*hc), log: c.log}
}

// SignIn exchanges email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	resp, err := c.api.SignInWithEmailPassword(email, password)
	if err != nil {
		return domain.Session{}, c.mapError(ctx, "sign in", err)
	}
	return toSession(resp), nil
}

// Refresh exchanges a refresh token for a new session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	resp, err := c.api.RefreshToken(refreshToken)
	if err != nil {
		return domain.Session{}, c.mapError(ctx, "refresh", err)
	}
	return toSession(resp), nil
}

// mapError treats 4xx answers and malformed requests as bad credentials and
// everything else as a collaborator failure.
func (c *Client) mapError(ctx context.Context, op string, err error) error {
	msg := err.Error()
	if err == types.ErrInvalidTokenRequest ||
		strings.HasPrefix(msg, "response status code 4") {
		c.log.InfoContext(ctx, "gotrue rejected credentials", slog.String("op", op))
		return fmt.Errorf("gotrue %s: %w", op, domain.ErrUnauthorized)
	}

	c.log.ErrorContext(ctx, "gotrue call failed", slog.String("op", op), slog.String("error", msg))
	return fmt.Errorf("gotrue %s: %w: %w", op, domain.ErrCollaborator, err)
}

func toSession(resp *types.TokenResponse) domain.Session {
	return domain.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		ExpiresIn:    resp.ExpiresIn,
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
	}
}
