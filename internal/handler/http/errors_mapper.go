package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-dialer/internal/dialer"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,
	ErrInvalidKey:  http.StatusBadRequest,

	dialer.ErrEmptyDestination: http.StatusBadRequest,
	dialer.ErrInvalidDigit:     http.StatusBadRequest,
	dialer.ErrCallInProgress:   http.StatusConflict,
	dialer.ErrAlreadyStarted:   http.StatusConflict,
	dialer.ErrNotReady:         http.StatusServiceUnavailable,
	dialer.ErrStopped:          http.StatusServiceUnavailable,
}

// statusFromError maps dialer errors to HTTP statuses. Anything unknown
// comes from the device and is reported as a bad gateway.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadGateway
}
