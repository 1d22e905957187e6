package builder

import (
	"strings"
	"unicode/utf8"

	"calcpad/internal/domain"
)

// operatorRunes are the ASCII and keypad forms of the four operators.
const operatorRunes = "+-*/" + domain.GlyphSubtract + domain.GlyphMultiply + domain.GlyphDivide

// Builder owns the expression text being typed. The zero value is empty and
// ready to use.
type Builder struct {
	text string
}

// New returns an empty Builder.
func New() *Builder { return &Builder{} }

// Append applies one input symbol to the expression.
func (b *Builder) Append(value string) { b.text = Next(b.text, value) }

// Clear empties the expression.
func (b *Builder) Clear() { b.text = "" }

// Text returns the expression as typed.
func (b *Builder) Text() string { return b.text }

// Len returns the expression length in symbols.
func (b *Builder) Len() int { return utf8.RuneCountInString(b.text) }

// Next returns expr with value applied, without mutating anything.
//
//   - operator: dropped on an empty expression unless it is a minus, and
//     dropped after another operator
//   - ".": dropped if the trailing segment already has a point; becomes "0."
//     on an empty expression or right after an operator
//   - anything else is appended verbatim
func Next(expr, value string) string {
	switch {
	case IsOperator(value):
		if expr == "" {
			if IsSubtract(value) {
				return value
			}
			return expr
		}
		if endsWithOperator(expr) {
			return expr
		}
		return expr + value
	case value == domain.DecimalPoint:
		if strings.Contains(LastSegment(expr), domain.DecimalPoint) {
			return expr
		}
		if expr == "" || endsWithOperator(expr) {
			return expr + "0."
		}
		return expr + value
	default:
		return expr + value
	}
}

// IsOperator reports whether value is a single operator symbol in either form.
func IsOperator(value string) bool {
	return utf8.RuneCountInString(value) == 1 && strings.Contains(operatorRunes, value)
}

// IsSubtract reports whether value is the ASCII or keypad minus.
func IsSubtract(value string) bool {
	return value == "-" || value == domain.GlyphSubtract
}

// LastSegment returns the trailing run of the expression after the last
// operator.
func LastSegment(expr string) string {
	i := strings.LastIndexAny(expr, operatorRunes)
	if i < 0 {
		return expr
	}
	_, size := utf8.DecodeRuneInString(expr[i:])
	return expr[i+size:]
}

func endsWithOperator(expr string) bool {
	r, _ := utf8.DecodeLastRuneInString(expr)
	return r != utf8.RuneError && strings.ContainsRune(operatorRunes, r)
}
