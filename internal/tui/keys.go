package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Digits   key.Binding
	Ops      key.Binding
	Evaluate key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digits:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."), key.WithHelp("0-9 .", "number")),
		Ops:      key.NewBinding(key.WithKeys("+", "-", "*", "/"), key.WithHelp("+ - * /", "operator")),
		Evaluate: key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "evaluate")),
		Clear:    key.NewBinding(key.WithKeys("esc", "backspace", "delete"), key.WithHelp("esc", "clear")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Ops, k.Evaluate, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// keyName renames a terminal key event to the browser keyboard naming.
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return "Enter"
	case tea.KeyBackspace:
		return "Backspace"
	case tea.KeyDelete:
		return "Delete"
	case tea.KeyEsc:
		return "Escape"
	case tea.KeyUp:
		return "ArrowUp"
	case tea.KeyDown:
		return "ArrowDown"
	case tea.KeyLeft:
		return "ArrowLeft"
	case tea.KeyRight:
		return "ArrowRight"
	case tea.KeyRunes:
		return string(msg.Runes)
	default:
		return msg.String()
	}
}
