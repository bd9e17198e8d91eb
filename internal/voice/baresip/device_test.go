package baresip

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-dialer/internal/config"
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/voice"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBaresip answers ctrl_tcp commands on the far end of a pipe.
type fakeBaresip struct {
	t        *testing.T
	conn     net.Conn
	commands chan commandMsg
	failing  map[string]string

	writeMu sync.Mutex
}

func startFakeBaresip(t *testing.T, conn net.Conn, failing map[string]string) *fakeBaresip {
	t.Helper()
	fb := &fakeBaresip{t: t, conn: conn, commands: make(chan commandMsg, 16), failing: failing}
	go fb.serve()
	return fb
}

func (fb *fakeBaresip) serve() {
	r := newNetstringReader(fb.conn)
	for {
		frame, err := r.next()
		if err != nil {
			return
		}
		var cmd commandMsg
		if err = json.Unmarshal(frame, &cmd); err != nil {
			return
		}
		fb.commands <- cmd

		resp := responseMsg{Response: true, Ok: true, Token: cmd.Token}
		if data, ok := fb.failing[cmd.Command]; ok {
			resp.Ok = false
			resp.Data = data
		}
		fb.send(resp)
	}
}

func (fb *fakeBaresip) send(v any) {
	data, err := json.Marshal(v)
	require.NoError(fb.t, err)

	fb.writeMu.Lock()
	defer fb.writeMu.Unlock()
	_ = writeNetstring(fb.conn, data)
}

func (fb *fakeBaresip) event(typ, id, param string) {
	fb.send(eventMsg{Event: true, Type: typ, Class: "call", Direction: "outgoing", ID: id, Param: param})
}

func (fb *fakeBaresip) nextCommand(t *testing.T) commandMsg {
	t.Helper()
	select {
	case cmd := <-fb.commands:
		return cmd
	case <-time.After(2 * time.Second):
		t.Fatal("no command received")
		return commandMsg{}
	}
}

func (fb *fakeBaresip) noCommand(t *testing.T) {
	t.Helper()
	select {
	case cmd := <-fb.commands:
		t.Fatalf("unexpected command %q", cmd.Command)
	case <-time.After(50 * time.Millisecond):
	}
}

func newTestDevice(t *testing.T, failing map[string]string) (*Device, *fakeBaresip) {
	t.Helper()

	client, server := net.Pipe()
	fb := startFakeBaresip(t, server, failing)

	cfg := config.Baresip{Account: "sip:1001@pbx.test", RegInterval: 600 * time.Second}
	opts := voice.Options{
		CodecPreferences: []voice.Codec{voice.CodecOpus, voice.CodecPCMU},
		Logger:           logger.Nop(),
	}
	d := NewDevice(client, cfg, models.Credential("secret"), opts)

	t.Cleanup(func() {
		_ = d.Close()
		_ = server.Close()
	})
	return d, fb
}

func nextEvent(t *testing.T, d *Device) voice.Event {
	t.Helper()
	select {
	case ev := <-d.Events():
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return voice.Event{}
	}
}

func noEvent(t *testing.T, d *Device) {
	t.Helper()
	select {
	case ev := <-d.Events():
		t.Fatalf("unexpected %s event", ev.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDevice_RegisterSendsAccount(t *testing.T) {
	d, fb := newTestDevice(t, nil)

	require.NoError(t, d.Register(context.Background()))

	cmd := fb.nextCommand(t)
	assert.Equal(t, cmdUANew, cmd.Command)
	assert.Equal(t, "<sip:1001@pbx.test>;auth_pass=secret;regint=600;audio_codecs=opus/48000/2,PCMU/8000", cmd.Params)
	assert.NotEmpty(t, cmd.Token)
}

func TestDevice_RegisterCommandRejected(t *testing.T) {
	d, _ := newTestDevice(t, map[string]string{cmdUANew: "invalid account"})

	err := d.Register(context.Background())

	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Contains(t, err.Error(), "invalid account")
}

func TestDevice_RegisterOKReportedOnce(t *testing.T) {
	d, fb := newTestDevice(t, nil)

	fb.send(eventMsg{Event: true, Class: "register", Type: eventRegisterOK})
	fb.send(eventMsg{Event: true, Class: "register", Type: eventRegisterOK})

	assert.Equal(t, voice.EventRegistered, nextEvent(t, d).Type)
	noEvent(t, d)
}

func TestDevice_RegisterFail(t *testing.T) {
	d, fb := newTestDevice(t, nil)

	fb.send(eventMsg{Event: true, Class: "register", Type: eventRegisterFail, Param: "401 Unauthorized"})

	ev := nextEvent(t, d)
	assert.Equal(t, voice.EventError, ev.Type)
	assert.ErrorIs(t, ev.Err, ErrRegisterFailed)
	assert.Equal(t, "registration failed: 401 Unauthorized", ev.Message)
}

func TestDevice_CallLifecycle(t *testing.T) {
	d, fb := newTestDevice(t, nil)

	c, err := d.Connect(context.Background(), models.CallParams{To: "+15551234567"})
	require.NoError(t, err)

	cmd := fb.nextCommand(t)
	assert.Equal(t, cmdDial, cmd.Command)
	assert.Equal(t, "+15551234567", cmd.Params)
	assert.Equal(t, "+15551234567", c.Params().To)

	fb.event(eventCallOutgoing, "b-1", "")
	fb.event(eventCallRinging, "b-1", "")
	fb.event(eventCallEstablished, "b-1", "")

	ev := nextEvent(t, d)
	assert.Equal(t, voice.EventAccept, ev.Type)
	assert.Equal(t, c.ID(), ev.CallID)

	fb.event(eventCallClosed, "b-1", "Connection reset by user")

	ev = nextEvent(t, d)
	assert.Equal(t, voice.EventDisconnect, ev.Type)
	assert.Equal(t, c.ID(), ev.CallID)
	assert.Equal(t, "Connection reset by user", ev.Message)

	assert.ErrorIs(t, c.Mute(true), voice.ErrCallNotActive)
}

func TestDevice_ClosedBeforeEstablished(t *testing.T) {
	d, fb := newTestDevice(t, nil)

	c, err := d.Connect(context.Background(), models.CallParams{To: "100"})
	require.NoError(t, err)
	fb.nextCommand(t)

	fb.event(eventCallClosed, "b-9", "486 Busy Here")

	ev := nextEvent(t, d)
	assert.Equal(t, voice.EventDisconnect, ev.Type)
	assert.Equal(t, c.ID(), ev.CallID)
}

func TestDevice_IncomingCallsIgnored(t *testing.T) {
	d, fb := newTestDevice(t, nil)

	_, err := d.Connect(context.Background(), models.CallParams{To: "100"})
	require.NoError(t, err)
	fb.nextCommand(t)

	fb.send(eventMsg{Event: true, Class: "call", Type: eventCallEstablished, Direction: directionIncoming, ID: "in-1"})

	noEvent(t, d)
}

func TestDevice_ConnectValidation(t *testing.T) {
	d, fb := newTestDevice(t, nil)

	_, err := d.Connect(context.Background(), models.CallParams{})
	assert.ErrorIs(t, err, voice.ErrNoDestination)
	fb.noCommand(t)

	require.NoError(t, d.Close())
	_, err = d.Connect(context.Background(), models.CallParams{To: "100"})
	assert.ErrorIs(t, err, voice.ErrDeviceClosed)
	assert.ErrorIs(t, d.Register(context.Background()), voice.ErrDeviceClosed)
}

func TestDevice_DialRejected(t *testing.T) {
	d, _ := newTestDevice(t, map[string]string{cmdDial: "no account"})

	c, err := d.Connect(context.Background(), models.CallParams{To: "100"})

	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Nil(t, c)
	d.mu.Lock()
	assert.Empty(t, d.unbound)
	d.mu.Unlock()
}

func TestDevice_MuteTogglesOnlyOnChange(t *testing.T) {
	d, fb := newTestDevice(t, nil)

	c, err := d.Connect(context.Background(), models.CallParams{To: "100"})
	require.NoError(t, err)
	fb.nextCommand(t)

	require.NoError(t, c.Mute(true))
	assert.Equal(t, cmdMute, fb.nextCommand(t).Command)
	assert.True(t, c.IsMuted())

	require.NoError(t, c.Mute(true))
	fb.noCommand(t)

	require.NoError(t, c.Mute(false))
	assert.Equal(t, cmdMute, fb.nextCommand(t).Command)
	assert.False(t, c.IsMuted())
}

func TestDevice_DisconnectAll(t *testing.T) {
	d, fb := newTestDevice(t, nil)

	d.DisconnectAll()
	fb.noCommand(t)

	_, err := d.Connect(context.Background(), models.CallParams{To: "100"})
	require.NoError(t, err)
	fb.nextCommand(t)

	d.DisconnectAll()

	cmd := fb.nextCommand(t)
	assert.Equal(t, cmdHangupAll, cmd.Command)
	assert.Equal(t, "all", cmd.Params)
}

func TestDevice_ConnectionLost(t *testing.T) {
	d, fb := newTestDevice(t, nil)

	require.NoError(t, fb.conn.Close())

	ev := nextEvent(t, d)
	assert.Equal(t, voice.EventError, ev.Type)
	assert.ErrorIs(t, ev.Err, ErrCtrlClosed)
}

func TestNewFactory_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = NewFactory(config.Baresip{CtrlAddress: addr})(models.Credential("x"), voice.Options{})

	assert.Error(t, err)
}
