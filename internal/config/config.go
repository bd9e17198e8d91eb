// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the dialer. It is
// populated by merging environment variables, command-line flags, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as logging.
	App App `envPrefix:"APP_"`

	// Token configures the token endpoint.
	Token Token `envPrefix:"TOKEN_"`

	// Device selects and configures the voice backend.
	Device Device `envPrefix:"DEVICE_"`

	// SIP configures the native SIP backend.
	SIP SIP `envPrefix:"SIP_"`

	// Baresip configures the baresip ctrl_tcp backend.
	Baresip Baresip `envPrefix:"BARESIP_"`

	// Control configures the optional local HTTP control API.
	Control Control `envPrefix:"CONTROL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds logging settings.
type App struct {
	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the path the client logger appends to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Token configures the token endpoint.
type Token struct {
	// URL is fetched with a single GET on startup.
	// Env: TOKEN_URL
	URL string `env:"URL"`

	// RequestTimeout bounds the token request.
	// Env: TOKEN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Supported device drivers.
const (
	DriverSIP     = "sip"
	DriverBaresip = "baresip"
)

// Device selects the voice backend.
type Device struct {
	// Driver is either "sip" or "baresip".
	// Env: DEVICE_DRIVER
	Driver string `env:"DRIVER"`

	// Codecs is the ordered codec preference list, most preferred first.
	// Env: DEVICE_CODECS (comma separated)
	Codecs []string `env:"CODECS" envSeparator:","`

	// LogLevel is the verbosity of the device logger.
	// Env: DEVICE_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// SIP configures the native SIP user agent.
type SIP struct {
	// Env: SIP_REGISTRAR (host:port)
	Registrar string `env:"REGISTRAR"`
	// Env: SIP_USERNAME
	Username string `env:"USERNAME"`
	// Domain defaults to the registrar host:port.
	// Env: SIP_DOMAIN
	Domain string `env:"DOMAIN"`
	// Env: SIP_TRANSPORT
	Transport string `env:"TRANSPORT"`
	// Env: SIP_LISTEN_ADDRESS
	ListenAddress string `env:"LISTEN_ADDRESS"`
	// Env: SIP_EXPIRY
	Expiry time.Duration `env:"EXPIRY"`
	// RTPPort is advertised in the SDP offer.
	// Env: SIP_RTP_PORT
	RTPPort int `env:"RTP_PORT"`
}

// Baresip configures the connection to a running baresip instance.
type Baresip struct {
	// Env: BARESIP_CTRL_ADDRESS
	CtrlAddress string `env:"CTRL_ADDRESS"`
	// Account is the SIP address of record registered through baresip.
	// Env: BARESIP_ACCOUNT
	Account string `env:"ACCOUNT"`
	// Env: BARESIP_REG_INTERVAL
	RegInterval time.Duration `env:"REG_INTERVAL"`
}

// Control configures the local HTTP control API. Empty Address disables it.
type Control struct {
	// Env: CONTROL_ADDRESS
	Address string `env:"ADDRESS"`
	// Rate is the sustained number of dialer actions per second.
	// Env: CONTROL_RATE
	Rate float64 `env:"RATE"`
	// Env: CONTROL_BURST
	Burst int `env:"BURST"`
}

// Enabled reports whether the control API should be started.
func (c Control) Enabled() bool {
	return c.Address != ""
}

// GetStructuredConfig loads, merges and validates the configuration.
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(osArgs()).
		withJSON().
		withDefaults().
		build()
}
