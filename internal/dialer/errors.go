package dialer

import "errors"

var (
	// ErrEmptyDestination is the user-input validation error of a call
	// attempt without a number.
	ErrEmptyDestination = errors.New("please enter a phone number")
	// ErrNotReady is returned by Call before a device exists, e.g. after a
	// failed initialization.
	ErrNotReady       = errors.New("dialer not ready")
	ErrCallInProgress = errors.New("a call is already in progress")
	ErrInvalidDigit   = errors.New("invalid keypad key")
	ErrAlreadyStarted = errors.New("dialer already started")
	// ErrStopped is returned for actions sent after the event loop exited.
	ErrStopped = errors.New("dialer stopped")
)
