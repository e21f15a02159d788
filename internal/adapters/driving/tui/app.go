// Package tui implements the interactive ask session following the Elm
// architecture, built on Bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driving"
)

// answerMsg carries the result of one question.
type answerMsg struct {
	question string
	text     string
	err      error
}

// exchange is one completed question/answer pair in the transcript.
type exchange struct {
	question string
	answer   string
	failed   bool
}

// App is the ask-session TUI model. It implements tea.Model.
type App struct {
	contexts driving.ContextService
	answers  driving.AnswerService

	employeeID string

	input   textinput.Model
	spinner spinner.Model

	transcript []exchange
	waiting    bool

	styles appStyles
	width  int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

type appStyles struct {
	title    lipgloss.Style
	question lipgloss.Style
	answer   lipgloss.Style
	errText  lipgloss.Style
	hint     lipgloss.Style
}

func defaultStyles() appStyles {
	return appStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		question: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		answer:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// NewApp creates the ask-session model. The answer service is optional;
// without it the session renders assembled context blocks instead of
// generated answers.
func NewApp(contexts driving.ContextService, answers driving.AnswerService, employeeID string) (*App, error) {
	if contexts == nil {
		return nil, errors.New("creating app: context service is required")
	}

	input := textinput.New()
	input.Placeholder = "Ask an HR question..."
	input.Focus()
	input.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		contexts:   contexts,
		answers:    answers,
		employeeID: employeeID,
		input:      input,
		spinner:    sp,
		styles:     defaultStyles(),
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.input.Width = msg.Width - 4
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			if a.waiting {
				return a, nil
			}
			question := strings.TrimSpace(a.input.Value())
			if question == "" {
				return a, nil
			}
			a.input.SetValue("")
			a.waiting = true
			return a, tea.Batch(a.spinner.Tick, a.askCmd(question))
		}

	case answerMsg:
		a.waiting = false
		ex := exchange{question: msg.question}
		if msg.err != nil {
			ex.answer = msg.err.Error()
			ex.failed = true
		} else {
			ex.answer = msg.text
		}
		a.transcript = append(a.transcript, ex)
		return a, nil

	case spinner.TickMsg:
		if !a.waiting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// askCmd resolves one question off the update loop.
func (a *App) askCmd(question string) tea.Cmd {
	return func() tea.Msg {
		text, err := a.resolve(context.Background(), question)
		return answerMsg{question: question, text: text, err: err}
	}
}

func (a *App) resolve(ctx context.Context, question string) (string, error) {
	if a.answers != nil {
		return a.answers.Answer(ctx, question, a.employeeID)
	}

	result, err := a.contexts.Build(ctx, question, a.employeeID)
	if err != nil {
		return "", err
	}
	return renderContext(result), nil
}

// renderContext flattens assembled context for display when no LLM is
// configured.
func renderContext(result *domain.ContextResult) string {
	var b strings.Builder
	for i, block := range result.Blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.Text)
	}
	if len(result.Citations) > 0 {
		sources := make([]string, len(result.Citations))
		for i, c := range result.Citations {
			sources[i] = c.Source
		}
		b.WriteString("\n\nSources: ")
		b.WriteString(strings.Join(sources, ", "))
	}
	return b.String()
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.title.Render("helix-hr"))
	if a.employeeID != "" {
		b.WriteString(a.styles.hint.Render(fmt.Sprintf("  (employee %s)", a.employeeID)))
	}
	b.WriteString("\n\n")

	for _, ex := range a.transcript {
		b.WriteString(a.styles.question.Render("> " + ex.question))
		b.WriteString("\n")
		if ex.failed {
			b.WriteString(a.styles.errText.Render(ex.answer))
		} else {
			b.WriteString(a.styles.answer.Render(ex.answer))
		}
		b.WriteString("\n\n")
	}

	if a.waiting {
		b.WriteString(a.spinner.View())
		b.WriteString(a.styles.hint.Render(" thinking..."))
		b.WriteString("\n")
	} else {
		b.WriteString(a.input.View())
		b.WriteString("\n")
	}

	b.WriteString(a.styles.hint.Render("enter: ask • esc: quit"))
	return b.String()
}

// Run starts the ask session and blocks until the user quits.
func Run(contexts driving.ContextService, answers driving.AnswerService, employeeID string) error {
	app, err := NewApp(contexts, answers, employeeID)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running ask session: %w", err)
	}
	return nil
}
