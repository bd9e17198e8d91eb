package dialer

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-dialer/models"
)

// Call implements [Dialer]. An empty destination is rejected without any
// state change. Without a device, the attempt fails with ErrNotReady and is
// reported on the status bar.
//
// Connect runs on the loop, so actions and device events queue behind it
// for up to connectTimeout. A Hangup issued meanwhile is applied to the
// pending call once Connect returns.
func (c *Controller) Call(ctx context.Context) error {
	return c.do(ctx, func() error { return c.call(ctx) })
}

func (c *Controller) call(ctx context.Context) error {
	if c.destination == "" {
		return ErrEmptyDestination
	}
	if c.state != models.CallStateIdle {
		return ErrCallInProgress
	}
	if c.callAdapter == nil {
		c.setStatus("Call Failed: "+ErrNotReady.Error(), models.StatusError)
		return ErrNotReady
	}

	params := models.CallParams{To: c.destination}
	log := c.logger.With().Str("to", params.To).Logger()

	c.setState(models.CallStateDialing)
	c.setStatus("Calling "+params.To+"...", models.StatusBusy)
	c.publish()

	connectCtx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	call, err := c.callAdapter.Connect(connectCtx, params)
	if err != nil {
		log.Err(err).Msg("connect failed")
		c.setState(models.CallStateIdle)
		c.setStatus("Call Failed: "+err.Error(), models.StatusError)
		return err
	}

	c.pending = call
	log.Info().Str("call_id", call.ID()).Msg("dialing")
	return nil
}

// Hangup implements [Dialer].
func (c *Controller) Hangup(ctx context.Context) error {
	return c.do(ctx, func() error {
		if c.session == nil && c.pending == nil {
			return nil
		}
		c.callAdapter.DisconnectAll()
		return nil
	})
}

// ToggleMute implements [Dialer].
func (c *Controller) ToggleMute(ctx context.Context) error {
	return c.do(ctx, func() error {
		if c.session == nil {
			return nil
		}

		muted, err := c.callAdapter.ToggleMute(c.session)
		if err != nil {
			c.logger.Err(err).Str("call_id", c.session.ID()).Msg("mute toggle failed")
			return err
		}
		c.muted = muted
		return nil
	})
}

// keypadKeys are the characters the destination may contain.
const keypadKeys = "0123456789*#+"

func validDestination(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(keypadKeys, r) {
			return false
		}
	}
	return true
}

// PressKey appends key to the destination.
func (c *Controller) PressKey(ctx context.Context, key rune) error {
	if !strings.ContainsRune(keypadKeys, key) {
		return ErrInvalidDigit
	}
	return c.do(ctx, func() error {
		c.destination += string(key)
		return nil
	})
}

// SetDestination replaces the destination. Surrounding spaces are dropped.
func (c *Controller) SetDestination(ctx context.Context, to string) error {
	to = strings.TrimSpace(to)
	if !validDestination(to) {
		return ErrInvalidDigit
	}
	return c.do(ctx, func() error {
		c.destination = to
		return nil
	})
}

func (c *Controller) Backspace(ctx context.Context) error {
	return c.do(ctx, func() error {
		if n := len(c.destination); n > 0 {
			c.destination = c.destination[:n-1]
		}
		return nil
	})
}

func (c *Controller) ClearDestination(ctx context.Context) error {
	return c.do(ctx, func() error {
		c.destination = ""
		return nil
	})
}
