package typepad

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/db/sqlite"
	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/jusunglee/hinditype/internal/transliteration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, t tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: t})
	return next.(Model)
}

func TestOutputFollowsInput(t *testing.T) {
	m := New(transliteration.ModePhonetic, layout.Default, nil, "")
	m = typeText(m, "nam")
	assert.Equal(t, "नम्", m.Output())

	m = typeText(m, "aste")
	assert.Equal(t, "नमस्ते", m.Output())
	assert.Contains(t, m.View(), "नमस्ते")
}

func TestTabCyclesModes(t *testing.T) {
	m := New(transliteration.ModePhonetic, layout.Default, nil, "")
	m = typeText(m, "e")

	seen := map[transliteration.Mode]bool{}
	for range transliteration.Modes() {
		seen[m.mode] = true
		assert.Equal(t, transliteration.Transliterate("e", m.mode), m.Output())
		m = press(m, tea.KeyTab)
	}
	assert.Len(t, seen, len(transliteration.Modes()))
	assert.Equal(t, transliteration.ModePhonetic, m.mode)

	m = press(m, tea.KeyShiftTab)
	m = press(m, tea.KeyTab)
	assert.Equal(t, transliteration.ModePhonetic, m.mode)
}

func TestHomeRowForLayoutModes(t *testing.T) {
	m := New(transliteration.ModeInscript, layout.Default, nil, "")
	row := m.homeRow()
	assert.Contains(t, row, "ो")
	assert.Contains(t, row, "ओ")

	m = New(transliteration.ModePhonetic, layout.Default, nil, "")
	assert.Empty(t, m.homeRow())
}

func TestPracticePrompt(t *testing.T) {
	ctx := context.Background()
	repo, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	_, err = repo.CreatePrompt(ctx, db.CreatePromptParams{
		Text: "नमस्ते", Romanized: "namaste", Difficulty: db.DifficultyEasy, Source: "seed",
	})
	require.NoError(t, err)

	m := New(transliteration.ModePhonetic, layout.Default, repo, db.DifficultyEasy)
	msg := m.fetchPrompt()()
	next, _ := m.Update(msg)
	m = next.(Model)
	require.NotNil(t, m.target)
	assert.Equal(t, "नमस्ते", m.target.Text)
	assert.False(t, m.Matched())

	m = typeText(m, "namaste")
	assert.True(t, m.Matched())
	assert.Contains(t, m.View(), "✓")
}

func TestPracticePromptEmptyStore(t *testing.T) {
	m := New(transliteration.ModePhonetic, layout.Default, nil, "")
	assert.Nil(t, m.fetchPrompt())

	next, _ := m.Update(promptMsg{err: db.ErrNoRows})
	m = next.(Model)
	assert.Nil(t, m.target)
	assert.NoError(t, m.err)
}
