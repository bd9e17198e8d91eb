package dialer

import (
	"context"

	"github.com/MKhiriev/go-dialer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dialer_mock.go -package=mock

// Dialer is the user-facing surface of the controller, shared by the
// terminal UI and the control API.
type Dialer interface {
	// Call dials the current destination.
	Call(ctx context.Context) error
	// Hangup disconnects the active or pending call. No-op when idle.
	Hangup(ctx context.Context) error
	// ToggleMute inverts the mute state of the active call. No-op when idle.
	ToggleMute(ctx context.Context) error

	PressKey(ctx context.Context, key rune) error
	SetDestination(ctx context.Context, to string) error
	Backspace(ctx context.Context) error
	ClearDestination(ctx context.Context) error

	// Snapshot returns the latest published state.
	Snapshot() models.DialerSnapshot
	// Subscribe returns a channel receiving every new snapshot and a func
	// releasing it. Slow readers only see the most recent one.
	Subscribe() (<-chan models.DialerSnapshot, func())
}
