// Package anthropic implements the text-completion collaborator on top of the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/biokit-backend/internal/config"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// DefaultModel is used when llm.model is empty.
const DefaultModel = "claude-sonnet-4-5"

// Client sends completion requests to Claude.
type Client struct {
	client  sdk.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// New creates a Claude completion client. Extra options are appended after
// the API key, which lets tests point the client at a local server.
func New(cfg config.LLMConfig, logger *slog.Logger, opts ...option.RequestOption) *Client {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	all := append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &Client{
		client:  sdk.NewClient(all...),
		model:   model,
		timeout: cfg.Timeout,
		log:     logger.With("adapter", "anthropic"),
	}
}

// Complete sends one user message with the given system instruction.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.log.ErrorContext(ctx, "messages call failed",
			slog.String("model", c.model),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))
		return domain.Completion{}, fmt.Errorf("anthropic: %w: %w", domain.ErrCollaborator, err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return domain.Completion{}, fmt.Errorf("anthropic: %w: empty response", domain.ErrCollaborator)
	}

	tokens := int(msg.Usage.InputTokens + msg.Usage.OutputTokens)
	c.log.DebugContext(ctx, "messages call done",
		slog.String("model", c.model),
		slog.Int("tokens", tokens),
		slog.Duration("duration", time.Since(start)))

	return domain.Completion{Text: text.String(), TokensUsed: tokens}, nil
}
