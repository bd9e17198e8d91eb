// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package voice wraps a real-time voice client behind a small contract.
//
// A [Device] is the vendor client: it registers, places calls and reports
// what happened through its event channel. [Adapter] owns exactly one
// Device built from a credential and [Options] and exposes the operations
// the dialer needs through [CallAdapter]. Backends live in subpackages
// (sip, baresip).
package voice

import (
	"context"

	"github.com/MKhiriev/go-dialer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/voice_mock.go -package=mock

// Device is a vendor voice client.
type Device interface {
	// Register announces the client to its service. Success is reported by
	// an EventRegistered; a failure known before Register returns is
	// returned, later failures arrive as EventError.
	Register(ctx context.Context) error

	// Connect starts an outbound call and returns its handle immediately.
	// EventAccept or EventDisconnect with the call's ID follow.
	Connect(ctx context.Context, params models.CallParams) (Call, error)

	// DisconnectAll ends every call the device knows about. Each ended call
	// produces an EventDisconnect.
	DisconnectAll()

	// Events returns the channel the device reports on.
	Events() <-chan Event

	// Close releases the device. It is safe to call more than once.
	Close() error
}

// Call is the handle of one call placed by a Device.
type Call interface {
	ID() string
	Params() models.CallParams
	IsMuted() bool
	Mute(muted bool) error
}

// CallAdapter is what the dialer uses to drive calls.
type CallAdapter interface {
	// Register registers the underlying device. Only the first call reaches
	// the device.
	Register(ctx context.Context) error
	// Connect places a call. An empty destination yields ErrNoDestination.
	Connect(ctx context.Context, params models.CallParams) (Call, error)
	// DisconnectAll ends the active call, if any.
	DisconnectAll()
	// ToggleMute inverts the mute state of call and returns the new state.
	ToggleMute(call Call) (bool, error)
	// Events passes through the device events.
	Events() <-chan Event
	// Close releases the device.
	Close() error
}
