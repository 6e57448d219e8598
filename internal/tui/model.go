// Package tui provides the Bubble Tea keystroke capture for the typing quiz.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/verte-zerg/termkit/internal/model"
	"github.com/verte-zerg/termkit/internal/quiz"
)

// ErrCancelled is returned when the user quits before submitting.
var ErrCancelled = errors.New("quiz cancelled")

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	typedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Underline(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea quiz UI.
type Model struct {
	word      model.WordRecord
	session   *quiz.Session
	keys      keyMap
	cancelled bool
}

// NewModel constructs a quiz model and starts the session clock.
func NewModel(word model.WordRecord, clock clockwork.Clock) *Model {
	return &Model{
		word:    word,
		session: quiz.NewSession(clock),
		keys:    defaultKeyMap(),
	}
}

// Session returns the underlying typing session.
func (m *Model) Session() *quiz.Session {
	return m.session
}

// Cancelled reports whether the user quit without submitting.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.session.Submitted() || m.cancelled {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Submit):
		m.session.Submit()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Delete):
		m.session.DeleteLast()
		return m, nil
	}
	switch keyMsg.Type {
	case tea.KeySpace:
		m.session.Append(' ')
	case tea.KeyRunes:
		m.session.Append(keyMsg.Runes...)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Word: "))
	b.WriteString(wordStyle.Render(m.word.Spelling))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("No. of letters: %d", len([]rune(m.word.Spelling)))))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("User Typed: "))
	b.WriteString(typedStyle.Render(m.session.Text()))
	if !m.session.Submitted() && !m.cancelled {
		b.WriteString(cursorStyle.Render(" "))
	}
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render(m.keys.help()))
	b.WriteString("\n")
	return b.String()
}

// Options configure the program used by Run.
type Options struct {
	Clock  clockwork.Clock
	Input  io.Reader
	Output io.Writer
}

// Run shows word, captures one attempt and returns the submitted session.
func Run(ctx context.Context, word model.WordRecord, opts Options) (*quiz.Session, error) {
	m := NewModel(word, opts.Clock)
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run quiz: %w", err)
	}
	fm, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("failed to run quiz: unexpected model %T", final)
	}
	if fm.Cancelled() || !fm.Session().Submitted() {
		return nil, ErrCancelled
	}
	return fm.Session(), nil
}
