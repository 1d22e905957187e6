// Package tui is the terminal keypad front end built on bubbletea.
//
// Terminal key events are renamed to the keyboard names keymap understands
// (enter -> Enter, esc -> Escape, up -> ArrowUp, ...) and dispatched to one
// calculator. The display and keypad are redrawn after every event.
package tui
