package envsetup

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeLine(t *testing.T, m model, line string) model {
	t.Helper()
	if line != "" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
		m = next.(model)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(model)
}

func TestWizardWritesEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.True(t, NeedsSetup(path))

	m := New(path)
	m = typeLine(t, m, "")
	m = typeLine(t, m, "discord-token-123456")
	m = typeLine(t, m, "")
	m = typeLine(t, m, "2")
	m = typeLine(t, m, "google-key")
	require.Equal(t, stepConfirm, m.step)
	m = typeLine(t, m, "y")

	assert.Equal(t, stepDone, m.step)
	assert.False(t, NeedsSetup(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "DATABASE_URL=hinditype.db\nDISCORD_TOKEN=discord-token-123456\nLLM_PROVIDER=google\nGOOGLE_API_KEY=google-key\n", string(data))
}

func TestWizardSkipsLLM(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), ".env"))
	m = typeLine(t, m, "")
	m = typeLine(t, m, "tok")
	m = typeLine(t, m, "postgres://localhost/hinditype")
	m = typeLine(t, m, "")

	assert.Equal(t, stepConfirm, m.step)
	assert.Equal(t, "DATABASE_URL=postgres://localhost/hinditype\nDISCORD_TOKEN=tok\n", m.envContent())
}

func TestWizardValidation(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), ".env"))
	m = typeLine(t, m, "")
	m = typeLine(t, m, "")
	assert.Equal(t, stepDiscord, m.step)
	assert.Error(t, m.err)

	m = typeLine(t, m, "tok")
	m = typeLine(t, m, "")
	m = typeLine(t, m, "openai")
	assert.Equal(t, stepLLMProvider, m.step)
	assert.Error(t, m.err)
}

func TestWizardRestart(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), ".env"))
	m = typeLine(t, m, "")
	m = typeLine(t, m, "tok")
	m = typeLine(t, m, "")
	m = typeLine(t, m, "")
	m = typeLine(t, m, "n")

	assert.Equal(t, stepWelcome, m.step)
	assert.Empty(t, m.discordToken)
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	m := New("")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("नम")})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "न", next.(model).input)
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "***", maskToken("abc"))
	assert.Equal(t, "abcd****wxyz", maskToken("abcd1234wxyz"))
}
