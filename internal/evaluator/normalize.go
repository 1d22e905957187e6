package evaluator

import (
	"strings"
	"unicode"
)

var glyphs = strings.NewReplacer(
	"÷", "/",
	"×", "*",
	"−", "-",
)

// Normalize maps keypad glyphs to their ASCII operators and strips all
// whitespace.
func Normalize(expr string) string {
	expr = glyphs.Replace(expr)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
}
