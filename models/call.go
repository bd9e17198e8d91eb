// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// CallParams describes an outbound call request.
type CallParams struct {
	// To is the destination number or SIP user part.
	To string `json:"to"`
}

// Params returns the parameter map passed to the device on connect.
func (p CallParams) Params() map[string]string {
	return map[string]string{"To": p.To}
}

// CallState is the dialer state machine position.
type CallState int

const (
	CallStateIdle CallState = iota
	CallStateDialing
	CallStateInCall
)

func (s CallState) String() string {
	switch s {
	case CallStateIdle:
		return "idle"
	case CallStateDialing:
		return "dialing"
	case CallStateInCall:
		return "in_call"
	default:
		return "unknown"
	}
}

// MarshalText renders the state by name in JSON payloads.
func (s CallState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name produced by MarshalText.
func (s *CallState) UnmarshalText(text []byte) error {
	for _, st := range []CallState{CallStateIdle, CallStateDialing, CallStateInCall} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown call state %q", text)
}
