package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds a host:port pair. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the dialer flags from args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-log-level, -log-file
//	-token-url, -token-timeout
//	-driver, -codecs, -device-log-level
//	-sip-registrar, -sip-user, -sip-domain, -sip-transport, -sip-listen,
//	-sip-expiry, -sip-rtp-port
//	-baresip-ctrl, -baresip-account, -baresip-regint
//	-control-address, -control-rate, -control-burst
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("dialer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfg StructuredConfig
	var codecs string
	var registrar, listen, baresipCtrl, control NetAddress

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")

	fs.StringVar(&cfg.Token.URL, "token-url", "", "Token endpoint URL")
	fs.DurationVar(&cfg.Token.RequestTimeout, "token-timeout", 0, "Token request timeout (e.g., 10s)")

	fs.StringVar(&cfg.Device.Driver, "driver", "", "Voice device driver (sip, baresip)")
	fs.StringVar(&codecs, "codecs", "", "Comma separated codec preference list")
	fs.StringVar(&cfg.Device.LogLevel, "device-log-level", "", "Voice device log level")

	fs.Var(&registrar, "sip-registrar", "SIP registrar host:port")
	fs.StringVar(&cfg.SIP.Username, "sip-user", "", "SIP username")
	fs.StringVar(&cfg.SIP.Domain, "sip-domain", "", "SIP domain")
	fs.StringVar(&cfg.SIP.Transport, "sip-transport", "", "SIP transport (udp, tcp)")
	fs.Var(&listen, "sip-listen", "SIP listen address host:port")
	fs.DurationVar(&cfg.SIP.Expiry, "sip-expiry", 0, "SIP registration expiry")
	fs.IntVar(&cfg.SIP.RTPPort, "sip-rtp-port", 0, "RTP port advertised in SDP")

	fs.Var(&baresipCtrl, "baresip-ctrl", "baresip ctrl_tcp address host:port")
	fs.StringVar(&cfg.Baresip.Account, "baresip-account", "", "baresip SIP account (aor)")
	fs.DurationVar(&cfg.Baresip.RegInterval, "baresip-regint", 0, "baresip registration interval")

	fs.Var(&control, "control-address", "Control API address host:port")
	fs.Float64Var(&cfg.Control.Rate, "control-rate", 0, "Control API requests per second")
	fs.IntVar(&cfg.Control.Burst, "control-burst", 0, "Control API burst size")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Device.Codecs = splitList(codecs)
	cfg.SIP.Registrar = registrar.String()
	cfg.SIP.ListenAddress = listen.String()
	cfg.Baresip.CtrlAddress = baresipCtrl.String()
	cfg.Control.Address = control.String()

	return &cfg, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns host:port, or an empty string if nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be an IP address or a DNS name.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
