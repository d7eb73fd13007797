package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkdownCodeBlocks(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[]", "[]"},
		{"  [1]\n", "[1]"},
		{"```json\n[{\"text\": \"घर\"}]\n```", `[{"text": "घर"}]`},
		{"```\nplain\n```", "plain"},
	}
	for _, tt := range tests {
		got := StripMarkdownCodeBlocks(tt.input)
		if got != tt.want {
			t.Errorf("StripMarkdownCodeBlocks(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`Here you go: [{"a": 1}] hope that helps`, `[{"a": 1}]`},
		{"```json\n[1, [2]]\n```", "[1, [2]]"},
		{"no array", "no array"},
		{"] backwards [", "] backwards ["},
	}
	for _, tt := range tests {
		got := ExtractJSONArray(tt.input)
		if got != tt.want {
			t.Errorf("ExtractJSONArray(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

type echoClient struct{ calls int }

func (e *echoClient) Complete(_ context.Context, system, prompt string) (string, error) {
	e.calls++
	return system + "|" + prompt, nil
}

func TestTimedPassesThrough(t *testing.T) {
	inner := &echoClient{}
	c := Timed(ProviderAnthropic, inner)

	out, err := c.Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "sys|user", out)
	assert.Equal(t, 1, inner.calls)
}
