// Package config loads, merges and validates the dialer configuration.
//
// Sources, in precedence order (earlier non-zero fields win):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
