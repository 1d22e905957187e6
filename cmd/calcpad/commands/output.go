package commands

import (
	"github.com/fatih/color"

	"calcpad/internal/config"
	"calcpad/internal/domain"
)

func applyColor(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

// colorResult paints failure markers; numerals stay plain.
func colorResult(r domain.Result) string {
	if r.IsNumeric() {
		return r.String()
	}
	if r == domain.ResultError {
		return color.RedString(r.String())
	}
	return color.YellowString(r.String())
}
