package sipua

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-dialer/internal/voice"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/emiago/sipgo/sip"
)

// call is one outbound INVITE dialog.
type call struct {
	id        string
	params    models.CallParams
	recipient string

	muted atomic.Bool
	ended atomic.Bool

	mu          sync.Mutex
	invite      *sip.Request
	tx          sip.ClientTransaction
	answer      *sip.Response
	established bool

	cancelOnce sync.Once
	cancelled  chan struct{}
}

func newCall(id string, params models.CallParams, recipient string) *call {
	return &call{
		id:        id,
		params:    params,
		recipient: recipient,
		cancelled: make(chan struct{}),
	}
}

func (c *call) ID() string                { return c.id }
func (c *call) Params() models.CallParams { return c.params }
func (c *call) IsMuted() bool             { return c.muted.Load() }

// Mute only flips the local flag; media is handled elsewhere.
func (c *call) Mute(muted bool) error {
	if c.ended.Load() {
		return voice.ErrCallNotActive
	}
	c.muted.Store(muted)
	return nil
}

func (c *call) setInvite(req *sip.Request, tx sip.ClientTransaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invite, c.tx = req, tx
}

// establish records the 2xx answer. It reports false if a cancel was
// requested before the answer arrived.
func (c *call) establish(res *sip.Response) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.answer = res
	c.established = true

	select {
	case <-c.cancelled:
		return false
	default:
		return true
	}
}

func (c *call) dialog() (invite *sip.Request, answer *sip.Response, established bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invite, c.answer, c.established
}

func (c *call) requestCancel() {
	c.cancelOnce.Do(func() { close(c.cancelled) })
}
