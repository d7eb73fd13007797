package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jusunglee/hinditype/internal/llm"
)

// Re-export Model type and constants for external use
type Model = anthropic.Model

const (
	ModelClaudeSonnet4_5 Model = anthropic.ModelClaudeSonnet4_5_20250929
	ModelClaudeHaiku4_5  Model = anthropic.ModelClaudeHaiku4_5_20251001
)

// Short practice sentences don't need the larger model.
var DefaultModel Model = ModelClaudeHaiku4_5

type Client struct {
	client    anthropic.Client
	model     Model
	maxTokens int64
}

func NewClient(apiKey string, model Model) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: 2048,
	}
}

func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	for _, block := range message.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok && textBlock.Text != "" {
			return llm.StripMarkdownCodeBlocks(textBlock.Text), nil
		}
	}
	return "", fmt.Errorf("no text content in anthropic response (stop reason %q)", message.StopReason)
}

var _ llm.Client = (*Client)(nil)
