// Package client provides an HTTP implementation of domain.RemoteEvaluator
// for talking to a running `calcpad serve`.
//
// Supported operations:
//   - Evaluating an expression on the server (POST /api/evaluate).
//   - Applying one input symbol to an expression (POST /api/append).
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// full URL, and status text.
package client
