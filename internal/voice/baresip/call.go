package baresip

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-dialer/internal/voice"
	"github.com/MKhiriev/go-dialer/models"
)

type call struct {
	id       string
	remoteID string
	params   models.CallParams
	device   *Device

	muteMu sync.Mutex

	mu          sync.Mutex
	muted       bool
	established bool
	ended       atomic.Bool
}

func (c *call) ID() string                { return c.id }
func (c *call) Params() models.CallParams { return c.params }

func (c *call) IsMuted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Mute toggles baresip's mute only when the state differs, since the ctrl
// command is a toggle.
func (c *call) Mute(muted bool) error {
	if c.ended.Load() {
		return voice.ErrCallNotActive
	}

	c.muteMu.Lock()
	defer c.muteMu.Unlock()

	if c.IsMuted() == muted {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.device.ctx, commandTimeout)
	defer cancel()

	if _, err := c.device.ctrl.Command(ctx, cmdMute, ""); err != nil {
		return err
	}

	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
	return nil
}

func (c *call) establish() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.established {
		return false
	}
	c.established = true
	return true
}
