// Package calculator holds one calculator instance: the expression being
// typed and the latest result.
//
// Calls are expected one at a time from a single front end; an instance does
// no locking. Front ends that serve several users create one Service each.
package calculator
