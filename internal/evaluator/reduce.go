package evaluator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Reduce folds a postfix sequence into one value. Division by zero stops the
// fold immediately with ErrDivideByZero; a non-finite final value is
// ErrOverflow.
func Reduce(postfix []Token) (float64, error) {
	stack := make([]float64, 0, len(postfix))
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenNumber:
			v, err := strconv.ParseFloat(tok.Text, 64)
			// Out-of-range literals parse to ±Inf and surface as overflow below.
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return 0, fmt.Errorf("%w: bad number %q", ErrSyntax, tok.Text)
			}
			stack = append(stack, v)
		case TokenOperator:
			op, ok := operators[tok.Text]
			if !ok {
				return 0, fmt.Errorf("%w: unknown operator %q", ErrSyntax, tok.Text)
			}
			if len(stack) < 2 {
				return 0, fmt.Errorf("%w: operator %q is missing an operand", ErrSyntax, tok.Text)
			}
			b, a := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v, err := op.apply(a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
		default:
			return 0, fmt.Errorf("%w: unexpected token %q", ErrSyntax, tok.Text)
		}
	}
	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left after reduction", ErrSyntax, len(stack))
	}
	v := stack[0]
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v, ErrOverflow
	}
	return v, nil
}
