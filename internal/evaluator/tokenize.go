package evaluator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Tokenize scans a normalized expression left to right.
//
// A '-' at the start or right after an operator is a sign and is folded into
// the number that follows. Any character that is not a digit, a point or an
// operator stops the scan with ErrUnknownChar.
func Tokenize(expr string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case isDigit(c) || c == '.':
			end, err := scanNumber(expr, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Num(expr[i:end]))
			i = end
		case c == '-' && expectsOperand(tokens):
			if i+1 >= len(expr) || !(isDigit(expr[i+1]) || expr[i+1] == '.') {
				return nil, fmt.Errorf("%w: sign at offset %d has no number", ErrSyntax, i)
			}
			end, err := scanNumber(expr, i+1)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Num(expr[i:end]))
			i = end
		case isOperator(c):
			tokens = append(tokens, Op(string(c)))
			i++
		default:
			r, _ := utf8.DecodeRuneInString(expr[i:])
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownChar, r, i)
		}
	}
	return tokens, nil
}

func expectsOperand(tokens []Token) bool {
	return len(tokens) == 0 || tokens[len(tokens)-1].Kind == TokenOperator
}

// scanNumber consumes the digit/point run starting at start and checks it
// against digits [ "." digits ] with at least one digit overall.
func scanNumber(expr string, start int) (int, error) {
	end := start
	for end < len(expr) && (isDigit(expr[end]) || expr[end] == '.') {
		end++
	}
	lit := expr[start:end]
	if strings.Count(lit, ".") > 1 {
		return 0, fmt.Errorf("%w: number %q has more than one point", ErrSyntax, lit)
	}
	if strings.Trim(lit, ".") == "" {
		return 0, fmt.Errorf("%w: number %q has no digits", ErrSyntax, lit)
	}
	return end, nil
}
