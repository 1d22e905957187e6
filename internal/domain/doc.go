// Package domain defines core data models and interfaces shared across calcpad.
// It contains plain types (symbols, results, actions) and contracts only.
package domain
