package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidTokenConfigs indicates a missing or malformed token URL or a
	// non-positive request timeout.
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
	// ErrInvalidDeviceConfigs indicates an unknown driver or an empty codec list.
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")
	ErrInvalidSIPConfigs     = errors.New("invalid sip configuration")
	ErrInvalidBaresipConfigs = errors.New("invalid baresip configuration")
	// ErrInvalidControlConfigs indicates a control address with a
	// non-positive rate or burst.
	ErrInvalidControlConfigs = errors.New("invalid control configuration")
)
