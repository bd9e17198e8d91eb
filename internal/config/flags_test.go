package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllGroups(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-c", "/etc/dialer.json",
		"-log-level", "debug",
		"-token-url", "https://example.com/token",
		"-token-timeout", "5s",
		"-codecs", "opus, pcma ,",
		"-sip-registrar", "pbx.example.com:5070",
		"-sip-user", "1001",
		"-sip-listen", "0.0.0.0:5080",
		"-baresip-ctrl", "localhost:4444",
		"-control-address", "127.0.0.1:8088",
		"-control-rate", "2.5",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/dialer.json", cfg.JSONFilePath)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Token.RequestTimeout)
	assert.Equal(t, []string{"opus", "pcma"}, cfg.Device.Codecs)
	assert.Equal(t, "pbx.example.com:5070", cfg.SIP.Registrar)
	assert.Equal(t, "1001", cfg.SIP.Username)
	assert.Equal(t, "0.0.0.0:5080", cfg.SIP.ListenAddress)
	assert.Equal(t, "localhost:4444", cfg.Baresip.CtrlAddress)
	assert.Equal(t, "127.0.0.1:8088", cfg.Control.Address)
	assert.InDelta(t, 2.5, cfg.Control.Rate, 0.0001)
}

func TestParseFlags_EmptyArgsLeaveZeroValues(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "127.0.0.1:8080", want: "127.0.0.1:8080"},
		{in: "localhost:5060", want: "localhost:5060"},
		{in: "[::1]:5060", want: "[::1]:5060"},
		{in: "missing-port", wantErr: true},
		{in: "host:abc", wantErr: true},
		{in: "host:0", wantErr: true},
		{in: "host:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
