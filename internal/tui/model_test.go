package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/domain"
	"calcpad/internal/services/calculator"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func feed(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModel_TypingAndEvaluate(t *testing.T) {
	calc := calculator.New()
	m := feed(t, New(calc),
		runes("2"), runes("+"), runes("3"), runes("*"), runes("4"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Equal(t, "2+3*4", calc.Expression())
	assert.Equal(t, domain.Result("14"), calc.Result())
	assert.Contains(t, m.View(), "14")
	assert.Equal(t, "=", m.pressed)
}

func TestModel_ClearKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyBackspace, tea.KeyDelete} {
		calc := calculator.New()
		feed(t, New(calc), runes("9"), runes("/"), runes("0"), tea.KeyMsg{Type: tea.KeyEnter})
		require.Equal(t, domain.ResultInfinity, calc.Result())

		feed(t, New(calc), tea.KeyMsg{Type: k})
		assert.Equal(t, "", calc.Expression(), k)
		assert.Equal(t, domain.ResultZero, calc.Result(), k)
	}
}

func TestModel_IgnoresOtherKeys(t *testing.T) {
	calc := calculator.New()
	feed(t, New(calc), runes("x"), tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyTab}, runes("5"))
	assert.Equal(t, "5", calc.Expression())
}

func TestModel_Quit(t *testing.T) {
	m := New(calculator.New())
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestKeyName(t *testing.T) {
	cases := map[string]tea.KeyMsg{
		"Enter":     {Type: tea.KeyEnter},
		"Escape":    {Type: tea.KeyEsc},
		"ArrowUp":   {Type: tea.KeyUp},
		"Backspace": {Type: tea.KeyBackspace},
		"7":         runes("7"),
	}
	for want, msg := range cases {
		assert.Equal(t, want, keyName(msg))
	}
}

func TestPressedLabel_UsesGlyphs(t *testing.T) {
	assert.Equal(t, "×", pressedLabel(domain.Append("*")))
	assert.Equal(t, "÷", pressedLabel(domain.Append("/")))
	assert.Equal(t, "−", pressedLabel(domain.Append("-")))
	assert.Equal(t, "C", pressedLabel(domain.Action{Kind: domain.ActionClear}))
}
