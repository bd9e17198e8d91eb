// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported for request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
	// ErrInvalidKey is reported when the keypad path parameter is not a
	// single character.
	ErrInvalidKey = errors.New("keypad key must be a single character")
)
