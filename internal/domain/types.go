package domain

// Operator glyphs shown on the keypad. Their ASCII counterparts are accepted
// everywhere the glyphs are.
const (
	GlyphAdd      = "+"
	GlyphSubtract = "−"
	GlyphMultiply = "×"
	GlyphDivide   = "÷"
	DecimalPoint  = "."
)

// Result is the display string produced by an evaluation.
type Result string

const (
	// ResultZero is shown before any evaluation and after Clear.
	ResultZero Result = "0"
	// ResultError marks a malformed expression.
	ResultError Result = "Error"
	// ResultInfinity marks division by zero or a non-finite outcome.
	ResultInfinity Result = "Infinity"
)

func (r Result) String() string { return string(r) }

// IsNumeric reports whether r carries a numeral rather than a failure marker.
func (r Result) IsNumeric() bool {
	return r != ResultError && r != ResultInfinity
}

// Display is a snapshot of both fields a front end renders.
type Display struct {
	Expression string `json:"expression"`
	Result     Result `json:"result"`
}

// ActionKind selects which calculator operation an input event triggers.
type ActionKind int

const (
	// ActionNone is a handled event that changes nothing (e.g. arrow keys).
	ActionNone ActionKind = iota
	ActionAppend
	ActionClear
	ActionEvaluate
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionAppend:
		return "append"
	case ActionClear:
		return "clear"
	case ActionEvaluate:
		return "evaluate"
	default:
		return "unknown"
	}
}

// Action is one input event translated for the calculator. Value is only
// meaningful for ActionAppend.
type Action struct {
	Kind  ActionKind
	Value string
}

// Append returns an ActionAppend carrying value.
func Append(value string) Action { return Action{Kind: ActionAppend, Value: value} }

// ButtonKind classifies keypad buttons the way the page markup does.
type ButtonKind string

const (
	ButtonNumber   ButtonKind = "number"
	ButtonOperator ButtonKind = "operator"
	ButtonClear    ButtonKind = "clear"
	ButtonEquals   ButtonKind = "equals"
)

// Button is one labelled keypad control.
type Button struct {
	Label string     `json:"label"`
	Kind  ButtonKind `json:"kind"`
	Value string     `json:"value,omitempty"`
}
