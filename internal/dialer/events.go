package dialer

import (
	"github.com/MKhiriev/go-dialer/internal/voice"
	"github.com/MKhiriev/go-dialer/models"
)

func (c *Controller) handleEvent(ev voice.Event) {
	switch ev.Type {
	case voice.EventRegistered:
		c.logger.Info().Msg("device registered")
		c.setStatus(textReady, models.StatusReady)

	case voice.EventError:
		c.logger.Error().Str("message", ev.Message).Msg("device error")
		c.setStatus("Error: "+ev.Message, models.StatusError)

	case voice.EventAccept:
		c.accept(ev.CallID)

	case voice.EventDisconnect:
		c.disconnect(ev.CallID, ev.Message)
	}
}

func (c *Controller) accept(callID string) {
	if c.state != models.CallStateDialing || c.pending == nil || c.pending.ID() != callID {
		c.logger.Debug().Str("call_id", callID).Msg("accept for unknown call ignored")
		return
	}

	c.session = c.pending
	c.pending = nil
	c.setState(models.CallStateInCall)
	c.setStatus(textInCall, models.StatusBusy)
	c.logger.Info().Str("call_id", callID).Str("to", c.session.Params().To).Msg("call accepted")
}

// disconnect ends the session or the pending dial. Anything else, including
// a repeated disconnect, is ignored.
func (c *Controller) disconnect(callID, reason string) {
	switch {
	case c.session != nil && c.session.ID() == callID:
	case c.pending != nil && c.pending.ID() == callID:
	default:
		c.logger.Debug().Str("call_id", callID).Msg("disconnect for unknown call ignored")
		return
	}

	c.session = nil
	c.pending = nil
	c.muted = false
	c.setState(models.CallStateIdle)
	c.setStatus(textCallEnded, models.StatusReady)
	c.logger.Info().Str("call_id", callID).Str("reason", reason).Msg("call ended")
}
