package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Plans.validate(); err != nil {
		return fmt.Errorf("plans: %w", err)
	}

	if c.Billing.HistorySize <= 0 {
		return fmt.Errorf("billing.history_size must be > 0 (got %d)", c.Billing.HistorySize)
	}

	if c.RateLimit.GeneratePerMinute <= 0 || c.RateLimit.PublicPerMinute <= 0 || c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit budgets must be > 0")
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))

	switch l.Provider {
	case "anthropic", "gemini":
	default:
		return fmt.Errorf("provider must be one of anthropic, gemini (got %q)", l.Provider)
	}

	if l.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}

	return nil
}

func (p PlansConfig) validate() error {
	if p.FreeLimit < 0 || p.ProLimit < 0 || p.AgencyLimit < 0 {
		return fmt.Errorf("limits must be >= 0")
	}
	if p.FreeLimit > p.ProLimit || p.ProLimit > p.AgencyLimit {
		return fmt.Errorf("limits must be non-decreasing free <= pro <= agency")
	}
	return nil
}
