// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// applyDerived fills fields whose defaults depend on other fields.
func (cfg *StructuredConfig) applyDerived() {
	cfg.Device.Driver = strings.ToLower(strings.TrimSpace(cfg.Device.Driver))
	cfg.SIP.Transport = strings.ToLower(cfg.SIP.Transport)

	// The port is kept so bare numbers reach a registrar on a non-default port.
	if cfg.SIP.Domain == "" && cfg.SIP.Registrar != "" {
		cfg.SIP.Domain = cfg.SIP.Registrar
	}
}

// validate checks the merged configuration before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Token.validate(); err != nil {
		return err
	}

	if len(cfg.Device.Codecs) == 0 {
		return fmt.Errorf("%w: empty codec list", ErrInvalidDeviceConfigs)
	}

	switch cfg.Device.Driver {
	case DriverSIP:
		if err := cfg.SIP.validate(); err != nil {
			return err
		}
	case DriverBaresip:
		if err := cfg.Baresip.validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidDeviceConfigs, cfg.Device.Driver)
	}

	if cfg.Control.Enabled() && (cfg.Control.Rate <= 0 || cfg.Control.Burst <= 0) {
		return ErrInvalidControlConfigs
	}

	return nil
}

func (t Token) validate() error {
	if t.URL == "" {
		return fmt.Errorf("%w: token url is required", ErrInvalidTokenConfigs)
	}

	u, err := url.Parse(t.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: token url must be an absolute http(s) url", ErrInvalidTokenConfigs)
	}

	if t.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidTokenConfigs)
	}

	return nil
}

func (s SIP) validate() error {
	if s.Registrar == "" || s.Username == "" {
		return fmt.Errorf("%w: registrar and username are required", ErrInvalidSIPConfigs)
	}

	if s.Transport != "udp" && s.Transport != "tcp" {
		return fmt.Errorf("%w: unsupported transport %q", ErrInvalidSIPConfigs, s.Transport)
	}

	if s.Expiry <= 0 || s.RTPPort <= 0 {
		return fmt.Errorf("%w: expiry and rtp port must be positive", ErrInvalidSIPConfigs)
	}

	return nil
}

func (b Baresip) validate() error {
	if b.Account == "" || b.CtrlAddress == "" {
		return fmt.Errorf("%w: account and ctrl address are required", ErrInvalidBaresipConfigs)
	}

	return nil
}
