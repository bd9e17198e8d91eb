package config

import (
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validSIPConfig() *StructuredConfig {
	return &StructuredConfig{
		Token: Token{URL: "https://example.com/token"},
		SIP:   SIP{Registrar: "pbx.example.com:5060", Username: "1001"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidTokenConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validSIPConfig(),
		&StructuredConfig{Token: Token{URL: "https://other.example.com/token"}, App: App{LogLevel: "debug"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/token", cfg.Token.URL)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "dialer.log", cfg.App.LogFile)
}

func TestBuild_DefaultsApplied(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validSIPConfig())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Token.RequestTimeout)
	assert.Equal(t, DriverSIP, cfg.Device.Driver)
	assert.Equal(t, []string{"opus", "pcmu"}, cfg.Device.Codecs)
	assert.Equal(t, "udp", cfg.SIP.Transport)
	assert.Equal(t, "0.0.0.0:5060", cfg.SIP.ListenAddress)
	assert.Equal(t, time.Hour, cfg.SIP.Expiry)
	assert.Equal(t, 40000, cfg.SIP.RTPPort)
	assert.False(t, cfg.Control.Enabled())
}

func TestBuild_DerivesSIPDomainFromRegistrar(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validSIPConfig())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "pbx.example.com:5060", cfg.SIP.Domain)
}

func TestBuild_DerivedSIPDomainKeepsRegistrarPort(t *testing.T) {
	tests := []struct {
		name      string
		registrar string
		domain    string
		want      string
	}{
		{name: "non-default port", registrar: "pbx:5080", want: "pbx:5080"},
		{name: "no port", registrar: "pbx.example.com", want: "pbx.example.com"},
		{name: "explicit domain wins", registrar: "pbx:5080", domain: "example.com", want: "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validSIPConfig()
			cfg.SIP.Registrar = tt.registrar
			cfg.SIP.Domain = tt.domain

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)
			b.withDefaults()

			got, err := b.build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.SIP.Domain)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("TOKEN_URL", "https://env.example.com/token")
	t.Setenv("DEVICE_CODECS", "pcma,opus")
	t.Setenv("SIP_EXPIRY", "90s")
	t.Setenv("CONTROL_ADDRESS", "127.0.0.1:8088")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://env.example.com/token", b.configs[0].Token.URL)
	assert.Equal(t, []string{"pcma", "opus"}, b.configs[0].Device.Codecs)
	assert.Equal(t, 90*time.Second, b.configs[0].SIP.Expiry)
	assert.Equal(t, "127.0.0.1:8088", b.configs[0].Control.Address)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("TOKEN_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-token-url", "https://flag.example.com/token", "-driver", "baresip"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://flag.example.com/token", b.configs[0].Token.URL)
	assert.Equal(t, DriverBaresip, b.configs[0].Device.Driver)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Token.URL = "https://json.example.com/token"
	payload.Token.RequestTimeout = Duration(3 * time.Second)
	payload.Device.Codecs = []string{"g722"}
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://json.example.com/token", b.configs[1].Token.URL)
	assert.Equal(t, 3*time.Second, b.configs[1].Token.RequestTimeout)
	assert.Equal(t, []string{"g722"}, b.configs[1].Device.Codecs)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_EnvPathWinsOverFlagPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.LogLevel = "debug"
	second := StructuredJSONConfig{}
	second.App.LogLevel = "error"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "debug", b.configs[2].App.LogLevel)
}
