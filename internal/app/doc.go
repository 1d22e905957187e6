// Package app wires application dependencies for the CLI.
//
// It loads Config, opens the logger and builds the evaluator, the optional
// remote client and the per-session calculators, exposing them via App for
// commands to use.
package app
