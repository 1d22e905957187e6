package keymap

import (
	"strings"

	"calcpad/internal/domain"
)

// FromKey maps a key name (DOM KeyboardEvent.key naming) to an action. The
// boolean is false for keys the calculator does not handle.
func FromKey(key string) (domain.Action, bool) {
	switch key {
	case "Enter", "=":
		return domain.Action{Kind: domain.ActionEvaluate}, true
	case "Backspace", "Delete", "Escape":
		return domain.Action{Kind: domain.ActionClear}, true
	case "+", "-", "*", "/", ".":
		return domain.Append(key), true
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return domain.Append(key), true
	}
	if strings.HasPrefix(key, "Arrow") {
		return domain.Action{Kind: domain.ActionNone}, true
	}
	return domain.Action{}, false
}

// FromButton maps a keypad button press to an action.
func FromButton(kind domain.ButtonKind, value string) (domain.Action, bool) {
	switch kind {
	case domain.ButtonNumber, domain.ButtonOperator:
		return domain.Append(value), true
	case domain.ButtonClear:
		return domain.Action{Kind: domain.ActionClear}, true
	case domain.ButtonEquals:
		return domain.Action{Kind: domain.ActionEvaluate}, true
	default:
		return domain.Action{}, false
	}
}

func num(d string) domain.Button {
	return domain.Button{Label: d, Kind: domain.ButtonNumber, Value: d}
}

func op(glyph string) domain.Button {
	return domain.Button{Label: glyph, Kind: domain.ButtonOperator, Value: glyph}
}

// Keypad returns the button grid, top row first.
func Keypad() [][]domain.Button {
	return [][]domain.Button{
		{{Label: "C", Kind: domain.ButtonClear}, op(domain.GlyphDivide), op(domain.GlyphMultiply), op(domain.GlyphSubtract)},
		{num("7"), num("8"), num("9"), op(domain.GlyphAdd)},
		{num("4"), num("5"), num("6"), {Label: "=", Kind: domain.ButtonEquals}},
		{num("1"), num("2"), num("3"), num(domain.DecimalPoint)},
		{num("0")},
	}
}
