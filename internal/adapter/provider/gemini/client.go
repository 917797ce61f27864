// Package gemini implements the text-completion collaborator on top of the
// Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/heartmarshall/biokit-backend/internal/config"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// DefaultModel is used when llm.model is empty.
const DefaultModel = "gemini-2.5-flash"

// Client sends completion requests to Gemini.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// New creates a Gemini completion client. baseURL overrides the API endpoint
// when non-empty.
func New(ctx context.Context, cfg config.LLMConfig, baseURL string, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		client:  client,
		model:   model,
		timeout: cfg.Timeout,
		log:     logger.With("adapter", "gemini"),
	}, nil
}

// Complete sends the prompt as a single user turn.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	gc := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}, gc)
	if err != nil {
		c.log.ErrorContext(ctx, "generate content failed",
			slog.String("model", c.model),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))
		return domain.Completion{}, fmt.Errorf("gemini: %w: %w", domain.ErrCollaborator, err)
	}

	text := resp.Text()
	if text == "" {
		return domain.Completion{}, fmt.Errorf("gemini: %w: empty response", domain.ErrCollaborator)
	}

	var tokens int
	if resp.UsageMetadata != nil {
		tokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	c.log.DebugContext(ctx, "generate content done",
		slog.String("model", c.model),
		slog.Int("tokens", tokens),
		slog.Duration("duration", time.Since(start)))

	return domain.Completion{Text: text, TokensUsed: tokens}, nil
}
