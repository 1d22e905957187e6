package evaluator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"calcpad/internal/domain"
)

var (
	// ErrSyntax marks a malformed token stream or a missing operand.
	ErrSyntax = errors.New("malformed expression")
	// ErrUnknownChar marks a character outside digits, point and operators.
	ErrUnknownChar = fmt.Errorf("%w: unrecognized character", ErrSyntax)
	// ErrDivideByZero is returned when the right operand of / is exactly zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrOverflow is returned when the outcome is not a finite number.
	ErrOverflow = errors.New("result is not finite")
)

// Eval runs the whole pipeline. An expression that is empty after
// normalization evaluates to 0.
func Eval(expr string) (float64, error) {
	norm := Normalize(expr)
	if norm == "" {
		return 0, nil
	}
	tokens, err := Tokenize(norm)
	if err != nil {
		return 0, err
	}
	return Reduce(ToPostfix(tokens))
}

// Evaluate runs Eval and converts the outcome to a display result.
func Evaluate(expr string) domain.Result {
	v, err := Eval(expr)
	return ResultOf(v, err)
}

// ResultOf maps an Eval outcome to its display form.
func ResultOf(v float64, err error) domain.Result {
	switch {
	case errors.Is(err, ErrDivideByZero), errors.Is(err, ErrOverflow):
		return domain.ResultInfinity
	case err != nil:
		return domain.ResultError
	case math.IsInf(v, 0) || math.IsNaN(v):
		return domain.ResultInfinity
	}
	return domain.Result(FormatNumber(v))
}

// FormatNumber renders v as the shortest decimal that round-trips. Magnitudes
// of 1e21 and above, or below 1e-6, use exponent form ("1e+21", "1.5e-7").
// Negative zero renders as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// Func adapts a plain evaluation function to domain.Evaluator.
type Func func(expr string) domain.Result

func (f Func) Evaluate(expr string) domain.Result { return f(expr) }

// Default is the package pipeline as a domain.Evaluator.
var Default domain.Evaluator = Func(Evaluate)
