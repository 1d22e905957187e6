// Package commands defines the calcpad CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)        keypad TUI on a terminal, otherwise one result per stdin line
//   - eval          Evaluate an expression (locally or with --remote)
//   - press         Replay keypad symbols and print the display
//   - tui           Full-screen terminal keypad
//   - serve         HTTP server with the browser keypad and JSON API
//   - config        Print the effective configuration; `config init` writes defaults
//
// # Implementation
//
// The root command loads configuration and builds the app (logger, evaluator,
// optional remote client) before any subcommand runs, so handlers share one
// app context.
package commands
