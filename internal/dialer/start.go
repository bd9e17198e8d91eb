package dialer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dialer/internal/voice"
	"github.com/MKhiriev/go-dialer/models"
)

// Start begins initialization: the token fetch, the adapter construction
// and registration run in the background and report back to the loop.
// A failure is final; there is no retry.
func (c *Controller) Start(ctx context.Context) error {
	return c.do(ctx, func() error {
		if c.started {
			return ErrAlreadyStarted
		}
		c.started = true
		c.setStatus(textFetching, models.StatusOffline)

		go c.initialize(c.loopCtx)
		return nil
	})
}

func (c *Controller) initialize(ctx context.Context) {
	credential, err := c.tokens.FetchToken(ctx)
	if err != nil {
		c.post(func() { c.initFailed(err) })
		return
	}

	callAdapter, err := c.newAdapter(credential)
	if err != nil {
		c.post(func() { c.initFailed(err) })
		return
	}

	if !c.post(func() { c.install(callAdapter) }) {
		_ = callAdapter.Close()
		return
	}

	if err = callAdapter.Register(ctx); err != nil {
		c.post(func() { c.clientError(err) })
	}
}

func (c *Controller) initFailed(err error) {
	c.logger.Err(err).Msg("initialization failed")
	c.setStatus("Init Failed: "+err.Error(), models.StatusError)
}

func (c *Controller) install(callAdapter voice.CallAdapter) {
	c.callAdapter = callAdapter
	c.events = callAdapter.Events()
	c.logger.Info().Msg("call adapter ready, registering")
}

func (c *Controller) clientError(err error) {
	c.logger.Err(err).Msg("device error")
	c.setStatus(fmt.Sprintf("Error: %s", err.Error()), models.StatusError)
}
