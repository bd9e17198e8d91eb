// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sipua is a voice.Device backed by a native SIP user agent.
//
// The device registers against a registrar with digest authentication, the
// fetched credential being the password, places calls with INVITE carrying
// an SDP offer built from the codec preferences and tears them down with
// BYE or CANCEL. Media is not handled.
package sipua

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-dialer/internal/config"
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/utils"
	"github.com/MKhiriev/go-dialer/internal/voice"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/emiago/sipgo"
	"github.com/emiago/sipgo/sip"
)

const (
	userAgent   = "go-dialer"
	byeTimeout  = 5 * time.Second
	reasonLocal = "local hangup"
	reasonPeer  = "remote hangup"
	reasonAbort = "cancelled"
)

var ErrRegisterRejected = errors.New("registration rejected")

// Device implements voice.Device over sipgo.
type Device struct {
	cfg      config.SIP
	username string
	password string
	codecs   []voice.Codec

	ua     *sipgo.UserAgent
	client *sipgo.Client
	srv    *sipgo.Server

	localHost string
	localPort int

	events chan voice.Event
	ids    *utils.UUIDGenerator

	mu    sync.Mutex
	calls map[string]*call

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	logger *logger.Logger
}

// NewFactory returns a voice.DeviceFactory building SIP devices from cfg.
func NewFactory(cfg config.SIP) voice.DeviceFactory {
	return func(credential models.Credential, opts voice.Options) (voice.Device, error) {
		return NewDevice(cfg, credential, opts)
	}
}

// NewDevice creates the user agent and starts listening for in-dialog
// requests on cfg.ListenAddress.
func NewDevice(cfg config.SIP, credential models.Credential, opts voice.Options) (*Device, error) {
	host, portStr, err := net.SplitHostPort(cfg.ListenAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid sip listen address: %w", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid sip listen port: %w", err)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = localIP(cfg.Registrar)
	}

	ua, err := sipgo.NewUA(
		sipgo.WithUserAgent(userAgent),
		sipgo.WithUserAgentHostname(host),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sip user agent: %w", err)
	}

	srv, err := sipgo.NewServer(ua)
	if err != nil {
		ua.Close()
		return nil, fmt.Errorf("creating sip server: %w", err)
	}

	client, err := sipgo.NewClient(ua)
	if err != nil {
		srv.Close()
		ua.Close()
		return nil, fmt.Errorf("creating sip client: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Device{
		cfg:       cfg,
		username:  cfg.Username,
		password:  credential.Value(),
		codecs:    opts.CodecPreferences,
		ua:        ua,
		client:    client,
		srv:       srv,
		localHost: host,
		localPort: port,
		events:    make(chan voice.Event, voice.EventBufferSize),
		ids:       utils.NewUUIDGenerator(),
		calls:     make(map[string]*call),
		ctx:       ctx,
		cancel:    cancel,
		logger:    opts.DeviceLogger("sip"),
	}

	srv.OnBye(d.handleBye)

	go d.listen()

	return d, nil
}

func (d *Device) transport() string {
	return strings.ToUpper(d.cfg.Transport)
}

func (d *Device) listen() {
	network := strings.ToLower(d.cfg.Transport)
	if err := d.srv.ListenAndServe(d.ctx, network, d.cfg.ListenAddress); err != nil && d.ctx.Err() == nil {
		d.logger.Err(err).Str("address", d.cfg.ListenAddress).Msg("sip listener stopped")
		d.emit(voice.Failed(fmt.Errorf("sip listener: %w", err)))
	}
}

func (d *Device) emit(ev voice.Event) {
	select {
	case d.events <- ev:
	case <-d.ctx.Done():
	}
}

func (d *Device) aor() string {
	return fmt.Sprintf("<sip:%s@%s>", d.username, d.cfg.Domain)
}

// outboundProxy is where dialog-creating requests are sent, whatever host
// the destination URI names.
func (d *Device) outboundProxy() string {
	if _, _, err := net.SplitHostPort(d.cfg.Registrar); err != nil {
		return net.JoinHostPort(d.cfg.Registrar, "5060")
	}
	return d.cfg.Registrar
}

func (d *Device) contact() string {
	return fmt.Sprintf("<sip:%s@%s>", d.username, net.JoinHostPort(d.localHost, strconv.Itoa(d.localPort)))
}

// Register implements voice.Device. It sends a single REGISTER and answers
// one digest challenge. There is no refresh loop.
func (d *Device) Register(ctx context.Context) error {
	if d.ctx.Err() != nil {
		return voice.ErrDeviceClosed
	}

	recipientStr := "sip:" + d.cfg.Registrar
	var recipient sip.Uri
	if err := sip.ParseUri(recipientStr, &recipient); err != nil {
		return fmt.Errorf("parsing registrar uri: %w", err)
	}

	req := sip.NewRequest(sip.REGISTER, recipient)
	req.SetTransport(d.transport())
	req.AppendHeader(sip.NewHeader("From", d.aor()))
	req.AppendHeader(sip.NewHeader("To", d.aor()))
	req.AppendHeader(sip.NewHeader("Contact", d.contact()))
	req.AppendHeader(sip.NewHeader("Expires", strconv.Itoa(int(d.cfg.Expiry.Seconds()))))

	tx, err := d.client.TransactionRequest(ctx, req, sipgo.ClientRequestRegisterBuild)
	if err != nil {
		return fmt.Errorf("sending register: %w", err)
	}

	res, err := getResponse(ctx, tx)
	tx.Terminate()
	if err != nil {
		return fmt.Errorf("waiting for register response: %w", err)
	}

	if isChallenge(res) {
		authReq, err := authorize(req, res, recipientStr, d.username, d.password)
		if err != nil {
			return err
		}

		tx2, err := d.client.TransactionRequest(ctx, authReq,
			sipgo.ClientRequestIncreaseCSEQ,
			sipgo.ClientRequestAddVia,
		)
		if err != nil {
			return fmt.Errorf("sending authenticated register: %w", err)
		}

		res, err = getResponse(ctx, tx2)
		tx2.Terminate()
		if err != nil {
			return fmt.Errorf("waiting for authenticated register response: %w", err)
		}
	}

	if res.StatusCode != 200 {
		return fmt.Errorf("%w: %d %s", ErrRegisterRejected, res.StatusCode, res.Reason)
	}

	d.logger.Info().Str("registrar", d.cfg.Registrar).Msg("registered")
	d.emit(voice.Registered())
	return nil
}

// Connect implements voice.Device.
func (d *Device) Connect(ctx context.Context, params models.CallParams) (voice.Call, error) {
	to := params.Params()["To"]
	if to == "" {
		return nil, voice.ErrNoDestination
	}
	if d.ctx.Err() != nil {
		return nil, voice.ErrDeviceClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recipientStr := destinationURI(to, d.cfg.Domain)
	var recipient sip.Uri
	if err := sip.ParseUri(recipientStr, &recipient); err != nil {
		return nil, fmt.Errorf("parsing destination %q: %w", to, err)
	}

	c := newCall(d.ids.Generate(), params, recipientStr)

	req := sip.NewRequest(sip.INVITE, recipient)
	req.SetTransport(d.transport())
	req.AppendHeader(sip.NewHeader("From", d.aor()+";tag="+sip.GenerateTagN(16)))
	req.AppendHeader(sip.NewHeader("To", "<"+recipientStr+">"))
	req.AppendHeader(sip.NewHeader("Call-ID", c.id))
	req.AppendHeader(sip.NewHeader("Contact", d.contact()))
	req.AppendHeader(sip.NewHeader("Content-Type", "application/sdp"))
	req.SetBody(buildSDPOffer(d.localHost, d.cfg.RTPPort, d.codecs, time.Now().Unix()))
	req.SetDestination(d.outboundProxy())

	// The transaction outlives Connect, so it is bound to the device context.
	tx, err := d.client.TransactionRequest(d.ctx, req, sipgo.ClientRequestBuild)
	if err != nil {
		return nil, fmt.Errorf("sending invite to %s: %w", recipientStr, err)
	}
	c.setInvite(req, tx)

	d.mu.Lock()
	d.calls[c.id] = c
	d.mu.Unlock()

	d.logger.Info().Str("call_id", c.id).Str("to", recipientStr).Msg("invite sent")
	go d.runInvite(c, tx)

	return c, nil
}

// runInvite follows the INVITE transaction until the call is answered or
// fails.
func (d *Device) runInvite(c *call, tx sip.ClientTransaction) {
	authed := false
	log := d.logger.With().Str("call_id", c.id).Logger()

	for {
		select {
		case <-d.ctx.Done():
			tx.Terminate()
			return

		case <-c.cancelled:
			d.sendCancel(c)
			tx.Terminate()
			d.finish(c, reasonAbort)
			return

		case <-tx.Done():
			reason := "transaction ended without final response"
			if err := tx.Err(); err != nil {
				reason = err.Error()
			}
			d.finish(c, reason)
			return

		case res, ok := <-tx.Responses():
			if !ok {
				d.finish(c, "transaction closed")
				return
			}

			switch {
			case res.StatusCode < 200:
				log.Debug().Int("status", res.StatusCode).Msg("provisional response")

			case isChallenge(res) && !authed:
				authed = true
				invite, _, _ := c.dialog()
				authReq, err := authorize(invite, res, c.recipient, d.username, d.password)
				tx.Terminate()
				if err != nil {
					log.Err(err).Msg("invite challenge failed")
					d.finish(c, err.Error())
					return
				}

				tx, err = d.client.TransactionRequest(d.ctx, authReq,
					sipgo.ClientRequestIncreaseCSEQ,
					sipgo.ClientRequestAddVia,
				)
				if err != nil {
					log.Err(err).Msg("sending authenticated invite failed")
					d.finish(c, err.Error())
					return
				}
				c.setInvite(authReq, tx)

			case res.StatusCode < 300:
				invite, _, _ := c.dialog()
				if err := d.client.WriteRequest(buildACK(invite, res)); err != nil {
					log.Err(err).Msg("failed to send ack")
				}
				if !c.establish(res) {
					d.hangup(c)
					return
				}
				log.Info().Msg("call answered")
				d.emit(voice.Accepted(c.id))
				return

			default:
				d.finish(c, fmt.Sprintf("%d %s", res.StatusCode, res.Reason))
				return
			}
		}
	}
}

func (d *Device) sendCancel(c *call) {
	invite, _, _ := c.dialog()
	if invite == nil {
		return
	}

	ctx, cancel := context.WithTimeout(d.ctx, byeTimeout)
	defer cancel()

	tx, err := d.client.TransactionRequest(ctx, buildCANCEL(invite), sipgo.ClientRequestBuild)
	if err != nil {
		d.logger.Err(err).Str("call_id", c.id).Msg("failed to send cancel")
		return
	}
	_, _ = getResponse(ctx, tx)
	tx.Terminate()
}

// hangup sends BYE for an established call and reports it ended.
func (d *Device) hangup(c *call) {
	invite, answer, _ := c.dialog()

	ctx, cancel := context.WithTimeout(d.ctx, byeTimeout)
	defer cancel()

	tx, err := d.client.TransactionRequest(ctx, buildBYE(invite, answer), sipgo.ClientRequestBuild)
	if err != nil {
		d.logger.Err(err).Str("call_id", c.id).Msg("failed to send bye")
	} else {
		if _, err = getResponse(ctx, tx); err != nil {
			d.logger.Warn().Err(err).Str("call_id", c.id).Msg("no answer to bye")
		}
		tx.Terminate()
	}

	d.finish(c, reasonLocal)
}

// finish forgets the call and emits its disconnect. Only the first caller
// for a given call emits.
func (d *Device) finish(c *call, reason string) {
	d.mu.Lock()
	_, ok := d.calls[c.id]
	delete(d.calls, c.id)
	d.mu.Unlock()

	if !ok {
		return
	}

	c.ended.Store(true)
	d.logger.Info().Str("call_id", c.id).Str("reason", reason).Msg("call ended")
	d.emit(voice.Disconnected(c.id, reason))
}

// DisconnectAll implements voice.Device.
func (d *Device) DisconnectAll() {
	d.mu.Lock()
	calls := make([]*call, 0, len(d.calls))
	for _, c := range d.calls {
		calls = append(calls, c)
	}
	d.mu.Unlock()

	for _, c := range calls {
		if _, _, established := c.dialog(); established {
			go d.hangup(c)
			continue
		}
		c.requestCancel()
	}
}

func (d *Device) handleBye(req *sip.Request, tx sip.ServerTransaction) {
	var id string
	if h := req.CallID(); h != nil {
		id = h.Value()
	}

	d.mu.Lock()
	c, ok := d.calls[id]
	d.mu.Unlock()

	if !ok {
		res := sip.NewResponseFromRequest(req, 481, "Call/Transaction Does Not Exist", nil)
		if err := tx.Respond(res); err != nil {
			d.logger.Err(err).Msg("failed to respond to bye")
		}
		return
	}

	res := sip.NewResponseFromRequest(req, 200, "OK", nil)
	if err := tx.Respond(res); err != nil {
		d.logger.Err(err).Str("call_id", id).Msg("failed to respond to bye")
	}

	d.finish(c, reasonPeer)
}

// Events implements voice.Device.
func (d *Device) Events() <-chan voice.Event {
	return d.events
}

// Close implements voice.Device.
func (d *Device) Close() error {
	d.closeOnce.Do(func() {
		d.cancel()
		d.client.Close()
		d.srv.Close()
		d.ua.Close()
	})
	return nil
}
