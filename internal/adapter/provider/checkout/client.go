// Package checkout talks to the payment integration that opens checkout sessions.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/config"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// Client posts checkout requests to the configured endpoint.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a checkout client.
func New(cfg config.BillingConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		url:        cfg.CheckoutURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "checkout"),
	}
}

// Configured reports whether a checkout endpoint is set.
func (c *Client) Configured() bool {
	return c.url != ""
}

type checkoutRequest struct {
	PlanID string    `json:"planId"`
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}

type checkoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
	Error       string `json:"error"`
}

// CreateSession asks the payment integration for a checkout URL.
func (c *Client) CreateSession(ctx context.Context, plan domain.Plan, userID uuid.UUID, email string) (string, error) {
	body, err := json.Marshal(checkoutRequest{PlanID: string(plan), UserID: userID, Email: email})
	if err != nil {
		return "", fmt.Errorf("checkout: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("checkout: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "checkout request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("checkout: %w: %w", domain.ErrCollaborator, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("checkout: %w: read response: %w", domain.ErrCollaborator, err)
	}

	var out checkoutResponse
	if err := json.Unmarshal(raw, &out); err != nil && resp.StatusCode == http.StatusOK {
		c.log.ErrorContext(ctx, "checkout response is not json", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("checkout: %w: invalid response", domain.ErrCollaborator)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "checkout rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("error", out.Error))
		return "", fmt.Errorf("checkout: %w: status %d", domain.ErrCollaborator, resp.StatusCode)
	}
	if out.CheckoutURL == "" {
		return "", fmt.Errorf("checkout: %w: missing checkoutUrl", domain.ErrCollaborator)
	}

	c.log.InfoContext(ctx, "checkout session created",
		slog.String("plan", string(plan)),
		slog.String("user_id", userID.String()))
	return out.CheckoutURL, nil
}
