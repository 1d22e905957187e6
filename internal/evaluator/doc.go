// Package evaluator turns a finished calculator expression into a result.
//
// Pipeline
//
//   - Normalize   map the keypad glyphs ÷ × − to / * - and drop whitespace
//   - Tokenize    split into Number and Operator tokens, folding a unary minus
//     into the number that follows it
//   - ToPostfix   shunting-yard conversion; * and / bind tighter than + and -,
//     equal precedence associates left
//   - Reduce      fold the postfix sequence on a value stack
//
// # Results
//
// Eval reports failures as errors (ErrSyntax, ErrUnknownChar, ErrDivideByZero,
// ErrOverflow). Evaluate is the display boundary: it maps those onto the
// "Error" and "Infinity" result strings and formats successful values with
// FormatNumber.
package evaluator
