// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-dialer/internal/dialer"
)

const alertEmptyDestination = "Please enter a phone number."

// humanizeError turns action errors into a short notice line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, dialer.ErrStopped) {
		return "Dialer stopped"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or server unreachable"
	}

	return err.Error()
}
