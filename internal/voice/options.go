package voice

import (
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/rs/zerolog"
)

// Options are the construction settings of a Device.
type Options struct {
	// CodecPreferences is ordered, most preferred first.
	CodecPreferences []Codec
	// LogLevel is the verbosity of the device logger.
	LogLevel zerolog.Level
	Logger   *logger.Logger
}

// DeviceLogger returns the logger a device should use.
func (o Options) DeviceLogger(name string) *logger.Logger {
	l := o.Logger
	if l == nil {
		l = logger.Nop()
	}
	l = l.WithComponent("voice").WithLevel(o.LogLevel)
	return &logger.Logger{Logger: l.With().Str("device", name).Logger()}
}

// DeviceFactory constructs a Device from a credential.
type DeviceFactory func(credential models.Credential, opts Options) (Device, error)
