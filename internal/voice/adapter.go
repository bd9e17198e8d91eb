package voice

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/models"
)

// Adapter owns one Device for its whole lifetime.
type Adapter struct {
	device Device

	registered atomic.Bool
	closed     atomic.Bool
	closeOnce  sync.Once
	closeErr   error

	logger *logger.Logger
}

// NewAdapter builds the device from credential and opts.
func NewAdapter(factory DeviceFactory, credential models.Credential, opts Options) (*Adapter, error) {
	if credential.IsZero() {
		return nil, ErrNoCredential
	}
	if len(opts.CodecPreferences) == 0 {
		return nil, ErrNoCodecs
	}

	device, err := factory(credential, opts)
	if err != nil {
		return nil, fmt.Errorf("error constructing voice device: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Adapter{device: device, logger: log.WithComponent("voice")}, nil
}

// Register implements [CallAdapter].
func (a *Adapter) Register(ctx context.Context) error {
	if a.closed.Load() {
		return ErrDeviceClosed
	}
	if !a.registered.CompareAndSwap(false, true) {
		a.logger.Debug().Msg("device already registered, skipping")
		return nil
	}

	a.logger.Info().Msg("registering device")
	return a.device.Register(ctx)
}

// Connect implements [CallAdapter].
func (a *Adapter) Connect(ctx context.Context, params models.CallParams) (Call, error) {
	if params.To == "" {
		return nil, ErrNoDestination
	}
	if a.closed.Load() {
		return nil, ErrDeviceClosed
	}

	call, err := a.device.Connect(ctx, params)
	if err != nil {
		return nil, err
	}

	a.logger.Info().Str("call_id", call.ID()).Msg("call started")
	return call, nil
}

// DisconnectAll implements [CallAdapter].
func (a *Adapter) DisconnectAll() {
	if a.closed.Load() {
		return
	}
	a.device.DisconnectAll()
}

// ToggleMute implements [CallAdapter]. On error the mute state is left as it
// was and returned unchanged.
func (a *Adapter) ToggleMute(call Call) (bool, error) {
	if call == nil {
		return false, ErrNilCall
	}

	current := call.IsMuted()
	if err := call.Mute(!current); err != nil {
		return current, fmt.Errorf("error toggling mute: %w", err)
	}

	return !current, nil
}

// Events implements [CallAdapter].
func (a *Adapter) Events() <-chan Event {
	return a.device.Events()
}

// Close implements [CallAdapter].
func (a *Adapter) Close() error {
	a.closeOnce.Do(func() {
		a.closed.Store(true)
		a.closeErr = a.device.Close()
	})
	return a.closeErr
}
