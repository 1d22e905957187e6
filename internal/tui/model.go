package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calcpad/internal/domain"
	"calcpad/internal/keymap"
)

const displayWidth = 27

// Model is the bubbletea model for one calculator.
type Model struct {
	calc     domain.Calculator
	keys     keyMap
	help     help.Model
	pad      [][]domain.Button
	pressed  string
	quitting bool
}

// New returns a model driving calc.
func New(calc domain.Calculator) Model {
	return Model{
		calc: calc,
		keys: defaultKeyMap(),
		help: help.New(),
		pad:  keymap.Keypad(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		a, ok := keymap.FromKey(keyName(msg))
		if !ok {
			return m, nil
		}
		m.calc.Dispatch(a)
		m.pressed = pressedLabel(a)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// pressedLabel finds the keypad label to highlight for a.
func pressedLabel(a domain.Action) string {
	switch a.Kind {
	case domain.ActionClear:
		return "C"
	case domain.ActionEvaluate:
		return "="
	case domain.ActionAppend:
		switch a.Value {
		case "-":
			return domain.GlyphSubtract
		case "*":
			return domain.GlyphMultiply
		case "/":
			return domain.GlyphDivide
		}
		return a.Value
	}
	return ""
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	d := m.calc.Display()

	rs := resultStyle
	switch d.Result {
	case domain.ResultError:
		rs = errorStyle
	case domain.ResultInfinity:
		rs = infinityStyle
	}
	screen := displayStyle.Width(displayWidth).Render(lipgloss.JoinVertical(lipgloss.Right,
		expressionStyle.Render(d.Expression),
		rs.Render(d.Result.String()),
	))

	rows := make([]string, 0, len(m.pad))
	for _, row := range m.pad {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			cells = append(cells, m.buttonStyle(b).Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var b strings.Builder
	b.WriteString(screen)
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) buttonStyle(b domain.Button) lipgloss.Style {
	if b.Label == m.pressed {
		return pressedStyle
	}
	switch b.Kind {
	case domain.ButtonOperator:
		return operatorStyle
	case domain.ButtonEquals:
		return equalsStyle
	case domain.ButtonClear:
		return clearStyle
	}
	return buttonStyle
}

// Run starts the full-screen keypad and blocks until the user quits.
func Run(calc domain.Calculator, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(calc), opts...).Run()
	return err
}
