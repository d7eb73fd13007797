// Package typepad is a terminal typing pad. Whatever is typed is converted
// to Devanagari on every keystroke in the selected mode, optionally against
// a practice sentence from the prompt store.
package typepad

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/jusunglee/hinditype/internal/transliteration"
)

const homeRow = 2

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	outputStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	targetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type promptMsg struct {
	prompt db.Prompt
	err    error
}

type Model struct {
	input      textinput.Model
	mode       transliteration.Mode
	layouts    *layout.Registry
	repo       db.Repository
	difficulty string
	target     *db.Prompt
	err        error
}

// New returns a pad in mode. repo may be nil, in which case no practice
// sentences are shown.
func New(mode transliteration.Mode, layouts *layout.Registry, repo db.Repository, difficulty string) Model {
	ti := textinput.New()
	ti.Placeholder = "namaste"
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	return Model{
		input:      ti,
		mode:       mode,
		layouts:    layouts,
		repo:       repo,
		difficulty: difficulty,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchPrompt())
}

func (m Model) fetchPrompt() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	repo, difficulty := m.repo, m.difficulty
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		p, err := repo.RandomPrompt(ctx, difficulty)
		return promptMsg{prompt: p, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case promptMsg:
		m.err = nil
		switch {
		case db.IsNoRows(msg.err):
			m.target = nil
		case msg.err != nil:
			m.err = msg.err
		default:
			m.target = &msg.prompt
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.mode = nextMode(m.mode, 1)
			return m, nil
		case tea.KeyShiftTab:
			m.mode = nextMode(m.mode, -1)
			return m, nil
		case tea.KeyCtrlN:
			m.input.Reset()
			return m, m.fetchPrompt()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func nextMode(current transliteration.Mode, step int) transliteration.Mode {
	modes := transliteration.Modes()
	for i, mode := range modes {
		if mode == current {
			return modes[(i+step+len(modes))%len(modes)]
		}
	}
	return modes[0]
}

// Output is the converted text for the current input and mode.
func (m Model) Output() string {
	return transliteration.Transliterate(m.input.Value(), m.mode)
}

// Matched reports whether the output equals the practice sentence.
func (m Model) Matched() bool {
	return m.target != nil && m.Output() == m.target.Text
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("hinditype") + "  " + subtleStyle.Render("mode: ") + m.mode.String())
	s.WriteString("\n\n")

	if m.target != nil {
		s.WriteString(targetStyle.Render(m.target.Text))
		if m.Matched() {
			s.WriteString("  " + matchStyle.Render("✓"))
		}
		s.WriteString("\n\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()) + "\n\n")
	}

	s.WriteString(m.input.View())
	s.WriteString("\n")
	out := m.Output()
	if out == "" {
		out = " "
	}
	s.WriteString(outputStyle.Render(out))
	s.WriteString("\n")

	if row := m.homeRow(); row != "" {
		s.WriteString("\n" + row + "\n")
	}

	help := "tab: next mode • esc: quit"
	if m.repo != nil {
		help = "tab: next mode • ctrl+n: new sentence • esc: quit"
	}
	s.WriteString("\n" + subtleStyle.Render(help) + "\n")
	return s.String()
}

// homeRow renders the base and shifted output of the layout's home row keys
// for layout-backed modes.
func (m Model) homeRow() string {
	name, ok := m.mode.Layout()
	if !ok {
		return ""
	}
	l, ok := m.layouts.Layout(name)
	if !ok || len(l.Rows) <= homeRow {
		return ""
	}

	var keys, base, shifted []string
	for _, def := range l.Rows[homeRow] {
		r := []rune(def.Key)
		if len(r) != 1 {
			continue
		}
		keys = append(keys, fmt.Sprintf("%-3s", def.Key))
		base = append(base, fmt.Sprintf("%-3s", layout.LookupKeyOutput(l, r[0], false)))
		shifted = append(shifted, fmt.Sprintf("%-3s", layout.LookupKeyOutput(l, r[0], true)))
	}
	return subtleStyle.Render(strings.Join(keys, " ")) + "\n" +
		strings.Join(base, " ") + "\n" +
		strings.Join(shifted, " ")
}
