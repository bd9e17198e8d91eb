// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dialer holds the UI Controller: the Idle -> Dialing -> InCall
// state machine that binds user actions to the call adapter.
//
// All state is owned by a single event loop started with [Controller.Run].
// User actions and adapter events are both delivered to that loop, so no
// field is ever touched concurrently. Observers read immutable
// [models.DialerSnapshot] values published after each transition.
package dialer

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-dialer/internal/adapter"
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/voice"
	"github.com/MKhiriev/go-dialer/models"
)

const defaultConnectTimeout = 15 * time.Second

const (
	textInitializing = "Initializing..."
	textFetching     = "Fetching Token..."
	textReady        = "Ready to Call"
	textInCall       = "In Call"
	textCallEnded    = "Call Ended"

	labelMute   = "Mute"
	labelUnmute = "Unmute"
)

// AdapterFactory builds the call adapter from a fetched credential.
type AdapterFactory func(credential models.Credential) (voice.CallAdapter, error)

// Controller implements [Dialer].
type Controller struct {
	tokens         adapter.TokenAdapter
	newAdapter     AdapterFactory
	connectTimeout time.Duration

	actions chan action
	done    chan struct{}

	// loop-owned
	loopCtx     context.Context
	started     bool
	callAdapter voice.CallAdapter
	events      <-chan voice.Event
	state       models.CallState
	session     voice.Call
	pending     voice.Call
	status      models.Status
	destination string
	muted       bool

	snapMu   sync.RWMutex
	snapshot models.DialerSnapshot

	subMu      sync.Mutex
	subs       map[chan models.DialerSnapshot]struct{}
	subsClosed bool

	logger *logger.Logger
}

type action struct {
	fn    func() error
	reply chan error
}

// NewController returns an idle controller. Nothing happens until Run and
// Start are called.
func NewController(tokens adapter.TokenAdapter, newAdapter AdapterFactory, log *logger.Logger) *Controller {
	c := &Controller{
		tokens:         tokens,
		newAdapter:     newAdapter,
		connectTimeout: defaultConnectTimeout,
		actions:        make(chan action),
		done:           make(chan struct{}),
		state:          models.CallStateIdle,
		status:         models.NewStatus(textInitializing, models.StatusInitializing),
		subs:           make(map[chan models.DialerSnapshot]struct{}),
		logger:         log.WithComponent("dialer"),
	}
	c.snapshot = c.buildSnapshot()
	return c
}

// Run is the event loop. It returns when ctx is cancelled, after closing
// the adapter and every subscription.
func (c *Controller) Run(ctx context.Context) error {
	c.loopCtx = ctx
	defer close(c.done)
	defer c.shutdown()

	c.logger.Debug().Msg("dialer loop started")

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug().Msg("dialer loop stopped")
			return nil

		case act := <-c.actions:
			err := act.fn()
			c.publish()
			if act.reply != nil {
				act.reply <- err
			}

		case ev, ok := <-c.events:
			if !ok {
				c.events = nil
				continue
			}
			c.handleEvent(ev)
			c.publish()
		}
	}
}

// do runs fn on the loop and waits for its result.
func (c *Controller) do(ctx context.Context, fn func() error) error {
	act := action{fn: fn, reply: make(chan error, 1)}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.done:
		return ErrStopped
	case c.actions <- act:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.done:
		return ErrStopped
	case err := <-act.reply:
		return err
	}
}

// post queues fn on the loop without waiting. It reports false if the loop
// has already exited.
func (c *Controller) post(fn func()) bool {
	act := action{fn: func() error { fn(); return nil }}

	select {
	case <-c.done:
		return false
	case c.actions <- act:
		return true
	}
}

func (c *Controller) shutdown() {
	if c.callAdapter != nil {
		if err := c.callAdapter.Close(); err != nil {
			c.logger.Err(err).Msg("closing call adapter")
		}
	}

	c.subMu.Lock()
	defer c.subMu.Unlock()
	for ch := range c.subs {
		close(ch)
	}
	c.subs = nil
	c.subsClosed = true
}

func (c *Controller) setStatus(text string, tag models.StatusTag) {
	c.status = models.NewStatus(text, tag)
	c.logger.Debug().Str("status", text).Str("tag", string(tag)).Msg("status")
}

func (c *Controller) setState(state models.CallState) {
	if c.state != state {
		c.logger.Debug().Stringer("from", c.state).Stringer("to", state).Msg("transition")
	}
	c.state = state
}

func (c *Controller) controls() models.Controls {
	switch c.state {
	case models.CallStateDialing:
		return models.Controls{HangupEnabled: true}
	case models.CallStateInCall:
		return models.Controls{HangupEnabled: true, MuteEnabled: true}
	default:
		return models.Controls{CallEnabled: true}
	}
}

func (c *Controller) muteButton() models.MuteButton {
	if c.muted {
		return models.MuteButton{Label: labelUnmute, Active: true}
	}
	return models.MuteButton{Label: labelMute}
}
