package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
			LogFile:  "dialer.log",
		},
		Token: Token{
			RequestTimeout: 10 * time.Second,
		},
		Device: Device{
			Driver:   DriverSIP,
			Codecs:   []string{"opus", "pcmu"},
			LogLevel: "warn",
		},
		SIP: SIP{
			Transport:     "udp",
			ListenAddress: "0.0.0.0:5060",
			Expiry:        time.Hour,
			RTPPort:       40000,
		},
		Baresip: Baresip{
			CtrlAddress: "127.0.0.1:4444",
			RegInterval: 600 * time.Second,
		},
		Control: Control{
			Rate:  5,
			Burst: 10,
		},
	}
}
