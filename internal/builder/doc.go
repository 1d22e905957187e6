// Package builder accumulates calculator input one symbol at a time.
//
// It enforces the typing rules of a pocket calculator: no two operators in a
// row, a leading operator only when it is a minus sign, and at most one
// decimal point per number segment. Rejected input is dropped silently.
package builder
