package evaluator

// TokenKind distinguishes numbers from operators.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenOperator
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Token is a lexical unit of a normalized expression. Number text is digits
// with at most one point, optionally prefixed by '-'. Operator text is one of
// + - * /.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string { return t.Text }

// Num and Op are shorthand token constructors.
func Num(text string) Token { return Token{Kind: TokenNumber, Text: text} }
func Op(text string) Token  { return Token{Kind: TokenOperator, Text: text} }

type operator struct {
	precedence int
	apply      func(a, b float64) (float64, error)
}

var operators = map[string]operator{
	"+": {precedence: 1, apply: func(a, b float64) (float64, error) { return a + b, nil }},
	"-": {precedence: 1, apply: func(a, b float64) (float64, error) { return a - b, nil }},
	"*": {precedence: 2, apply: func(a, b float64) (float64, error) { return a * b, nil }},
	"/": {precedence: 2, apply: divide},
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

func isOperator(c byte) bool {
	_, ok := operators[string(c)]
	return ok
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
