// Package keymap translates front-end input events into calculator actions.
//
// Keyboard
//
//   - 0-9 and .               append
//   - + - * /                 append
//   - Enter, =                evaluate
//   - Backspace, Delete, Esc  clear
//   - Arrow keys              swallowed (handled, no action)
//
// Buttons carry a kind (number, operator, clear, equals) and a value, and
// Keypad returns the standard layout shared by every front end.
package keymap
