package llm

import (
	"context"
	"strings"
	"time"

	"github.com/jusunglee/hinditype/internal/metrics"
)

// Client sends one system+user exchange to a model and returns its text.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Providers the worker knows how to construct.
const (
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
)

type timedClient struct {
	provider string
	next     Client
}

// Timed wraps c so every call is observed in the LLM duration histogram.
func Timed(provider string, c Client) Client {
	return &timedClient{provider: provider, next: c}
}

func (t *timedClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	start := time.Now()
	defer func() {
		metrics.LLMDuration.WithLabelValues(t.provider).Observe(time.Since(start).Seconds())
	}()
	return t.next.Complete(ctx, system, prompt)
}

// StripMarkdownCodeBlocks removes ```...``` wrappers from LLM responses
func StripMarkdownCodeBlocks(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx != -1 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return text
}

// ExtractJSONArray trims chatter around the outermost [...] of a response.
// Text without brackets is returned unchanged.
func ExtractJSONArray(text string) string {
	text = StripMarkdownCodeBlocks(text)
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end < start {
		return text
	}
	return text[start : end+1]
}
