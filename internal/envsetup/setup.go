// envsetup provides a small .env configuration wizard.
// The bot runs it on first startup when no .env file exists, collecting the
// Discord token, the database location, and LLM credentials for the worker.
package envsetup

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/hinditype/internal/llm"
)

const defaultDatabaseURL = "hinditype.db"

type step int

const (
	stepWelcome step = iota
	stepDiscord
	stepDatabase
	stepLLMProvider
	stepLLMKey
	stepConfirm
	stepDone
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))
)

type model struct {
	path         string
	step         step
	discordToken string
	databaseURL  string
	llmProvider  string
	llmAPIKey    string
	input        string
	err          error
}

// New returns a wizard that writes its answers to path.
func New(path string) model {
	return model{path: path, step: stepWelcome}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		m.input += string(key.Runes)
	case tea.KeySpace:
		m.input += " "
	}
	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	m.err = nil
	value := strings.TrimSpace(m.input)
	m.input = ""

	switch m.step {
	case stepWelcome:
		m.step = stepDiscord

	case stepDiscord:
		if value == "" {
			m.err = errors.New("Discord token is required")
			return m, nil
		}
		m.discordToken = value
		m.step = stepDatabase

	case stepDatabase:
		m.databaseURL = value
		if m.databaseURL == "" {
			m.databaseURL = defaultDatabaseURL
		}
		m.step = stepLLMProvider

	case stepLLMProvider:
		switch strings.ToLower(value) {
		case "", "0", "skip":
			m.step = stepConfirm
		case "1", llm.ProviderAnthropic:
			m.llmProvider = llm.ProviderAnthropic
			m.step = stepLLMKey
		case "2", llm.ProviderGoogle:
			m.llmProvider = llm.ProviderGoogle
			m.step = stepLLMKey
		default:
			m.err = errors.New("Enter 1 for Anthropic, 2 for Google, or leave empty to skip")
		}

	case stepLLMKey:
		if value == "" {
			m.err = errors.New("API key is required")
			return m, nil
		}
		m.llmAPIKey = value
		m.step = stepConfirm

	case stepConfirm:
		switch strings.ToLower(value) {
		case "", "y", "yes":
			if err := os.WriteFile(m.path, []byte(m.envContent()), 0600); err != nil {
				m.err = fmt.Errorf("writing %s: %w", m.path, err)
				return m, nil
			}
			m.step = stepDone
			return m, tea.Quit
		case "n", "no":
			return New(m.path), nil
		}
	}
	return m, nil
}

// envContent renders the collected answers in the variable names the
// commands read through ff.WithEnvVars.
func (m model) envContent() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DATABASE_URL=%s\n", m.databaseURL)
	fmt.Fprintf(&b, "DISCORD_TOKEN=%s\n", m.discordToken)
	switch m.llmProvider {
	case llm.ProviderAnthropic:
		fmt.Fprintf(&b, "LLM_PROVIDER=%s\nANTHROPIC_API_KEY=%s\n", m.llmProvider, m.llmAPIKey)
	case llm.ProviderGoogle:
		fmt.Fprintf(&b, "LLM_PROVIDER=%s\nGOOGLE_API_KEY=%s\n", m.llmProvider, m.llmAPIKey)
	}
	return b.String()
}

func (m model) View() string {
	var s strings.Builder

	prompt := func(label, input string) {
		s.WriteString("\n")
		s.WriteString(labelStyle.Render(label))
		s.WriteString("\n> " + inputStyle.Render(input))
		if m.err != nil {
			s.WriteString("\n" + errorStyle.Render(m.err.Error()))
		}
	}

	switch m.step {
	case stepWelcome:
		s.WriteString(titleStyle.Render("hinditype - Env Setup"))
		s.WriteString("\n\nThis wizard writes a .env file for the bot and the prompt worker.\n")
		s.WriteString("You'll need a Discord bot token. An LLM API key is optional.\n\n")
		s.WriteString(labelStyle.Render("Press Enter to continue, Ctrl+C to exit"))

	case stepDiscord:
		s.WriteString(titleStyle.Render("Step 1: Discord Bot Token"))
		s.WriteString("\n\n  1. Go to " + linkStyle.Render("https://discord.com/developers/applications") + "\n")
		s.WriteString("  2. Create a new application (or select existing)\n")
		s.WriteString("  3. Open the Bot section and click 'Reset Token'\n")
		prompt("Paste your Discord token here:", maskToken(m.input))

	case stepDatabase:
		s.WriteString(titleStyle.Render("Step 2: Database"))
		s.WriteString("\n\nA SQLite file path or a postgres:// URL.\n")
		prompt(fmt.Sprintf("Database (empty for %s):", defaultDatabaseURL), m.input)

	case stepLLMProvider:
		s.WriteString(titleStyle.Render("Step 3: Practice Prompt Generator"))
		s.WriteString("\n\nThe worker asks an LLM for practice sentences.\n\n")
		s.WriteString("  1. Anthropic (Claude)\n")
		s.WriteString("  2. Google (Gemini)\n")
		prompt("Enter 1 or 2, or leave empty to skip:", m.input)

	case stepLLMKey:
		s.WriteString(titleStyle.Render("Step 4: LLM API Key"))
		s.WriteString("\n\n")
		if m.llmProvider == llm.ProviderAnthropic {
			s.WriteString("  Create a key at " + linkStyle.Render("https://console.anthropic.com") + "\n")
		} else {
			s.WriteString("  Create a key at " + linkStyle.Render("https://aistudio.google.com/apikey") + "\n")
		}
		prompt("Paste your API key here:", maskToken(m.input))

	case stepConfirm:
		s.WriteString(titleStyle.Render("Configuration Complete"))
		s.WriteString("\n\n")
		s.WriteString("  Database:     " + successStyle.Render(m.databaseURL) + "\n")
		s.WriteString("  Discord:      " + successStyle.Render(maskToken(m.discordToken)) + "\n")
		if m.llmProvider != "" {
			s.WriteString("  LLM Provider: " + successStyle.Render(m.llmProvider) + "\n")
			s.WriteString("  LLM API Key:  " + successStyle.Render(maskToken(m.llmAPIKey)) + "\n")
		}
		prompt("Save this configuration? [Y/n]:", m.input)

	case stepDone:
		s.WriteString(successStyle.Render("Saved " + m.path))
	}

	s.WriteString("\n")
	return s.String()
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

// Run starts the wizard and reports whether the file at path was written.
func Run(path string) (bool, error) {
	finalModel, err := tea.NewProgram(New(path)).Run()
	if err != nil {
		return false, err
	}
	return finalModel.(model).step == stepDone, nil
}

// NeedsSetup reports whether path does not exist yet.
func NeedsSetup(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, os.ErrNotExist)
}
