package google

import (
	"context"
	"fmt"
	"strings"

	"github.com/jusunglee/hinditype/internal/llm"
	"google.golang.org/genai"
)

// Model represents a Google AI model identifier
type Model string

const (
	ModelGemma3_27B     Model = "gemma-3-27b-it"
	ModelGemini2_5Flash Model = "gemini-2.5-flash"
	ModelGemini2_5Pro   Model = "gemini-2.5-pro"
)

var DefaultModel Model = ModelGemini2_5Flash

type Client struct {
	client *genai.Client
	model  Model
}

func NewClient(ctx context.Context, apiKey string, model Model) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// request builds the contents and config for a call. Gemma models reject
// system instructions, so the system text is prepended to the user turn.
func (c *Client) request(system, prompt string) ([]*genai.Content, *genai.GenerateContentConfig) {
	if strings.HasPrefix(string(c.model), "gemma") {
		return []*genai.Content{{Parts: []*genai.Part{{Text: system + "\n\n" + prompt}}}}, nil
	}
	return []*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		}
}

func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	contents, config := c.request(system, prompt)
	result, err := c.client.Models.GenerateContent(ctx, string(c.model), contents, config)
	if err != nil {
		return "", fmt.Errorf("google API call failed: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from google")
	}

	return llm.StripMarkdownCodeBlocks(result.Candidates[0].Content.Parts[0].Text), nil
}

var _ llm.Client = (*Client)(nil)
