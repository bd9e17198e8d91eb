// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote token endpoint.
//
// [TokenAdapter] performs a single GET and returns the credential used to
// construct the voice device. Non-2xx statuses are mapped to the sentinel
// errors in errors.go by mapHTTPError so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-dialer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_adapter_mock.go -package=mock

// TokenAdapter fetches call-access credentials.
type TokenAdapter interface {
	// FetchToken issues one request to the configured endpoint and returns
	// the credential from its {"token": "..."} body. Transport, status and
	// decoding failures are returned as-is; there is no retry.
	FetchToken(ctx context.Context) (models.Credential, error)
}
