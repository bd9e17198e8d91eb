package sipua

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-dialer/internal/config"
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/voice"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBareDevice builds a Device without a user agent; only code paths that
// never touch the network may be exercised with it.
func newBareDevice(t *testing.T) *Device {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return &Device{
		cfg:    config.SIP{Domain: "pbx.example.com", Transport: "udp"},
		events: make(chan voice.Event, voice.EventBufferSize),
		calls:  make(map[string]*call),
		ctx:    ctx,
		cancel: cancel,
		logger: logger.Nop(),
	}
}

func TestDevice_ConnectRejectsEmptyDestination(t *testing.T) {
	d := newBareDevice(t)

	c, err := d.Connect(context.Background(), models.CallParams{})

	assert.Nil(t, c)
	assert.ErrorIs(t, err, voice.ErrNoDestination)
}

func TestDevice_ClosedDeviceRejectsWork(t *testing.T) {
	d := newBareDevice(t)
	d.cancel()

	_, err := d.Connect(context.Background(), models.CallParams{To: "100"})
	assert.ErrorIs(t, err, voice.ErrDeviceClosed)
	assert.ErrorIs(t, d.Register(context.Background()), voice.ErrDeviceClosed)
}

func TestDevice_FinishEmitsOnce(t *testing.T) {
	d := newBareDevice(t)
	c := newCall("c1", models.CallParams{To: "100"}, "sip:100@pbx.example.com")
	d.calls[c.id] = c

	d.finish(c, "486 Busy Here")
	d.finish(c, reasonLocal)

	require.Len(t, d.events, 1)
	assert.Equal(t, voice.Disconnected("c1", "486 Busy Here"), <-d.events)
	assert.Empty(t, d.calls)
	assert.ErrorIs(t, c.Mute(true), voice.ErrCallNotActive)
}

func TestDevice_DisconnectAllCancelsPendingCalls(t *testing.T) {
	d := newBareDevice(t)
	c := newCall("c1", models.CallParams{To: "100"}, "sip:100@pbx.example.com")
	d.calls[c.id] = c

	d.DisconnectAll()

	select {
	case <-c.cancelled:
	default:
		t.Fatal("pending call was not cancelled")
	}

	// a second request must not panic on the closed channel
	d.DisconnectAll()
}

func TestDevice_DisconnectAllWithoutCallsIsNoop(t *testing.T) {
	d := newBareDevice(t)
	d.DisconnectAll()
	assert.Empty(t, d.events)
}

func TestCall_MuteIsLocal(t *testing.T) {
	c := newCall("c1", models.CallParams{To: "100"}, "sip:100@pbx.example.com")

	assert.False(t, c.IsMuted())
	require.NoError(t, c.Mute(true))
	assert.True(t, c.IsMuted())
	require.NoError(t, c.Mute(false))
	assert.False(t, c.IsMuted())
	assert.Equal(t, "c1", c.ID())
	assert.Equal(t, models.CallParams{To: "100"}, c.Params())
}

func TestCall_EstablishAfterCancel(t *testing.T) {
	c := newCall("c1", models.CallParams{To: "100"}, "sip:100@pbx.example.com")
	c.requestCancel()

	assert.False(t, c.establish(nil))

	_, _, established := c.dialog()
	assert.True(t, established)
}

func TestNewFactory_InvalidListenAddress(t *testing.T) {
	factory := NewFactory(config.SIP{ListenAddress: "nope"})

	_, err := factory(models.Credential("abc"), voice.Options{})

	assert.Error(t, err)
}
