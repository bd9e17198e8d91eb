// Package http implements the local control API of the dialer.
//
// It exposes the same actions as the terminal UI (call, hang up, mute,
// keypad, destination) as JSON endpoints, plus a websocket feed of state
// snapshots. Request tracing, access logging and rate limiting of the
// mutating routes are handled here before requests reach the dialer.
package http
