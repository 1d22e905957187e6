// Package web serves calcpad over HTTP.
//
// HTTP API
//
//	GET  /               keypad page; drives a /ws session from the browser
//	GET  /health         {"status":"ok"}
//	GET  /api/keypad     button layout as JSON rows
//	POST /api/evaluate   {"expression"} -> {"expression","result"}
//	POST /api/append     {"expression","value"} -> {"expression","result":"0"}
//	GET  /ws             WebSocket keypad session
//
// # Sessions
//
// Every WebSocket connection owns one calculator. Frames from the browser are
// applied strictly in arrival order by the connection's read loop, and each
// handled frame is answered with the new display. A separate goroutine owns
// writes and keeps the connection alive with pings.
//
// Evaluation failures ("Error", "Infinity") are ordinary 200 results. Only
// malformed requests get 4xx statuses, with a JSON {"error": "..."} body.
package web
