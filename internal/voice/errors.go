package voice

import "errors"

var (
	// ErrNoDestination is returned by Connect when CallParams.To is empty.
	ErrNoDestination = errors.New("no destination supplied")
	// ErrDeviceClosed is returned for operations on a closed device.
	ErrDeviceClosed = errors.New("voice device closed")
	ErrUnknownCodec = errors.New("unknown codec")
	ErrNoCodecs     = errors.New("codec preference list is empty")
	// ErrCallNotActive is returned when a call handle no longer belongs to
	// an ongoing call.
	ErrCallNotActive = errors.New("call is not active")
	ErrNoCredential  = errors.New("empty credential")
	ErrNilCall       = errors.New("nil call")
)
