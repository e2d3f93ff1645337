// Package assistant wraps an LLM provider into the one-shot call used by the chat panel.
package assistant

import (
	"context"
	"time"

	"ai-notetaking-be/internal/constant"
	"ai-notetaking-be/internal/pkg/logger"
	"ai-notetaking-be/pkg/llm"
)

const logModule = "AssistantClient"

// Generator turns a prompt into display text. Failures are already folded
// into the returned text.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

type Client struct {
	provider llm.LLMProvider
	model    string
	timeout  time.Duration
	logger   logger.ILogger
}

var _ Generator = (*Client)(nil)

// NewClient builds a client. A nil provider means no credential is configured.
// timeout <= 0 leaves the transport default in place.
func NewClient(provider llm.LLMProvider, model string, timeout time.Duration, log logger.ILogger) *Client {
	return &Client{
		provider: provider,
		model:    model,
		timeout:  timeout,
		logger:   log,
	}
}

// Configured reports whether a provider is available.
func (c *Client) Configured() bool {
	return c.provider != nil
}

// Generate sends prompt with the fixed study-companion instruction. It makes
// no call at all when unconfigured and exactly one call otherwise.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	if c.provider == nil {
		return constant.AssistantUnavailableMessage
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	opts := []llm.Option{llm.WithSystemInstruction(constant.AssistantSystemInstruction)}
	if c.model != "" {
		opts = append(opts, llm.WithModel(c.model))
	}

	start := time.Now()
	text, err := c.provider.Generate(ctx, prompt, opts...)
	if err != nil {
		c.logger.Error(logModule, "Error generating AI response", map[string]interface{}{
			"error":       err,
			"reason":      err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return constant.AssistantErrorMessage
	}

	c.logger.Debug(logModule, "AI response generated", map[string]interface{}{
		"duration_ms": time.Since(start).Milliseconds(),
		"length":      len(text),
	})
	return text
}
