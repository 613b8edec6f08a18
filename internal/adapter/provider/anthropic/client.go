// Package anthropic wraps the Anthropic Messages API behind the single
// text-generation call the analysis pipeline needs.
package anthropic

import (
	"context"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/ndvoronin/creatorpulse-backend/internal/config"
)

// Client sends prompts to the Anthropic Messages API.
type Client struct {
	api   sdk.Client
	model string
}

// New creates a provider client from config. The caller is responsible for
// checking cfg.HasProviderKey() before use; a client built without a key
// will fail on every call.
func New(cfg config.ProviderConfig) *Client {
	return &Client{
		api:   sdk.NewClient(option.WithAPIKey(cfg.APIKey)),
		model: cfg.Model,
	}
}

// GenerateText sends a single-turn prompt and returns the model's text
// response. Timeouts are the caller's concern: pass a context with a
// deadline and the in-flight request is cancelled when it expires.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	msg, err := c.api.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: 2048,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("messages api: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty response from model %s", c.model)
	}

	return msg.Content[0].Text, nil
}
