// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package baresip is a voice.Device that drives a running baresip instance
// over its ctrl_tcp module.
//
// Commands are sent as netstring-framed JSON and correlated with their
// responses by token. Registration and call progress are reported by
// baresip as asynchronous events, which the device translates into
// voice.Event values.
package baresip

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-dialer/internal/config"
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/utils"
	"github.com/MKhiriev/go-dialer/internal/voice"
	"github.com/MKhiriev/go-dialer/models"
)

const (
	dialTimeout    = 5 * time.Second
	commandTimeout = 5 * time.Second
)

var ErrRegisterFailed = errors.New("registration failed")

// Device implements voice.Device on top of baresip ctrl_tcp.
type Device struct {
	cfg        config.Baresip
	credential models.Credential
	codecs     []voice.Codec

	ctrl   *ctrlConn
	events chan voice.Event
	ids    *utils.UUIDGenerator

	mu      sync.Mutex
	unbound []*call
	calls   map[string]*call

	registered atomic.Bool

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	closeErr  error

	logger *logger.Logger
}

// NewFactory returns a voice.DeviceFactory connecting to cfg.CtrlAddress.
func NewFactory(cfg config.Baresip) voice.DeviceFactory {
	return func(credential models.Credential, opts voice.Options) (voice.Device, error) {
		conn, err := net.DialTimeout("tcp", cfg.CtrlAddress, dialTimeout)
		if err != nil {
			return nil, fmt.Errorf("connecting to baresip ctrl_tcp: %w", err)
		}
		return NewDevice(conn, cfg, credential, opts), nil
	}
}

// NewDevice takes ownership of conn and starts consuming baresip events.
func NewDevice(conn net.Conn, cfg config.Baresip, credential models.Credential, opts voice.Options) *Device {
	log := opts.DeviceLogger("baresip")
	ctx, cancel := context.WithCancel(context.Background())

	d := &Device{
		cfg:        cfg,
		credential: credential,
		codecs:     opts.CodecPreferences,
		ctrl:       newCtrlConn(conn, log),
		events:     make(chan voice.Event, voice.EventBufferSize),
		ids:        utils.NewUUIDGenerator(),
		calls:      make(map[string]*call),
		ctx:        ctx,
		cancel:     cancel,
		logger:     log,
	}

	go d.dispatch()

	return d
}

// accountLine builds the uanew parameter, e.g.
// <sip:1001@pbx.example.com>;auth_pass=secret;regint=600;audio_codecs=opus/48000/2,PCMU/8000
func (d *Device) accountLine() string {
	aor := strings.TrimSpace(d.cfg.Account)
	if !strings.HasPrefix(aor, "<") {
		aor = "<" + aor + ">"
	}

	var b strings.Builder
	b.WriteString(aor)
	b.WriteString(";auth_pass=")
	b.WriteString(d.credential.Value())
	fmt.Fprintf(&b, ";regint=%d", int(d.cfg.RegInterval.Seconds()))
	if len(d.codecs) > 0 {
		b.WriteString(";audio_codecs=")
		b.WriteString(voice.CodecList(d.codecs))
	}
	return b.String()
}

// Register adds the account to baresip. The outcome of the REGISTER itself
// arrives later as REGISTER_OK or REGISTER_FAIL.
func (d *Device) Register(ctx context.Context) error {
	if d.ctx.Err() != nil {
		return voice.ErrDeviceClosed
	}

	if _, err := d.ctrl.Command(ctx, cmdUANew, d.accountLine()); err != nil {
		return err
	}

	d.logger.Debug().Str("account", d.cfg.Account).Msg("account added")
	return nil
}

// Connect dials the "To" entry of the call parameters. The returned call is bound to baresip's call id
// by the first outgoing call event.
func (d *Device) Connect(ctx context.Context, params models.CallParams) (voice.Call, error) {
	if d.ctx.Err() != nil {
		return nil, voice.ErrDeviceClosed
	}
	to := params.Params()["To"]
	if to == "" {
		return nil, voice.ErrNoDestination
	}

	c := &call{id: d.ids.Generate(), params: params, device: d}

	d.mu.Lock()
	d.unbound = append(d.unbound, c)
	d.mu.Unlock()

	if _, err := d.ctrl.Command(ctx, cmdDial, to); err != nil {
		d.unbind(c)
		return nil, err
	}

	d.logger.Info().Str("call_id", c.id).Str("to", to).Msg("dialing")
	return c, nil
}

// DisconnectAll hangs up every call baresip knows about.
func (d *Device) DisconnectAll() {
	d.mu.Lock()
	active := len(d.calls) + len(d.unbound)
	d.mu.Unlock()
	if active == 0 || d.ctx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(d.ctx, commandTimeout)
	defer cancel()

	if _, err := d.ctrl.Command(ctx, cmdHangupAll, "all"); err != nil {
		d.logger.Err(err).Msg("hangupall failed")
	}
}

func (d *Device) Events() <-chan voice.Event {
	return d.events
}

// Close drops the ctrl connection. Calls in baresip are left as they are.
func (d *Device) Close() error {
	d.closeOnce.Do(func() {
		d.cancel()
		d.closeErr = d.ctrl.Close()
	})
	return d.closeErr
}

func (d *Device) emit(ev voice.Event) {
	select {
	case d.events <- ev:
	case <-d.ctx.Done():
	}
}

func (d *Device) dispatch() {
	for ev := range d.ctrl.Events() {
		d.handleEvent(ev)
	}

	if d.ctx.Err() == nil {
		d.logger.Warn().Msg("baresip ctrl connection lost")
		d.emit(voice.Failed(d.ctrl.closeErr()))
	}
}

func (d *Device) handleEvent(ev eventMsg) {
	d.logger.Trace().Str("type", ev.Type).Str("id", ev.ID).Str("param", ev.Param).Msg("baresip event")

	switch ev.Type {
	case eventRegisterOK:
		// REGISTER_OK repeats on every refresh.
		if d.registered.CompareAndSwap(false, true) {
			d.emit(voice.Registered())
		}

	case eventRegisterFail:
		d.registered.Store(false)
		d.emit(voice.Failed(fmt.Errorf("%w: %s", ErrRegisterFailed, ev.Param)))

	case eventCallOutgoing, eventCallRinging, eventCallProgress:
		d.bind(ev)

	case eventCallEstablished:
		if c := d.bind(ev); c != nil && c.establish() {
			d.emit(voice.Accepted(c.id))
		}

	case eventCallClosed:
		c := d.bind(ev)
		if c == nil {
			return
		}
		d.mu.Lock()
		delete(d.calls, ev.ID)
		d.mu.Unlock()
		c.ended.Store(true)
		d.emit(voice.Disconnected(c.id, ev.Param))
	}
}

// bind returns the call for ev.ID, attaching the oldest unbound call on
// first sight. Incoming calls are ignored.
func (d *Device) bind(ev eventMsg) *call {
	if ev.ID == "" || ev.Direction == directionIncoming {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if c, ok := d.calls[ev.ID]; ok {
		return c
	}
	if len(d.unbound) == 0 {
		return nil
	}

	c := d.unbound[0]
	d.unbound = d.unbound[1:]
	c.remoteID = ev.ID
	d.calls[ev.ID] = c
	return c
}

func (d *Device) unbind(c *call) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, u := range d.unbound {
		if u == c {
			d.unbound = append(d.unbound[:i], d.unbound[i+1:]...)
			return
		}
	}
}
