package http

import (
	"github.com/MKhiriev/go-dialer/internal/config"
	"github.com/MKhiriev/go-dialer/internal/dialer"
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/utils"
	"github.com/MKhiriev/go-dialer/models"
	"golang.org/x/time/rate"
)

type Handler struct {
	dialer    dialer.Dialer
	buildInfo models.AppBuildInfo
	hub       *Hub
	limiter   *rate.Limiter
	traceIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(d dialer.Dialer, buildInfo models.AppBuildInfo, cfg config.Control, log *logger.Logger) *Handler {
	log = log.WithComponent("http")
	log.Info().Msg("http handler created")

	h := &Handler{
		dialer:    d,
		buildInfo: buildInfo,
		hub:       NewHub(d, log),
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    log,
	}
	if cfg.Rate > 0 && cfg.Burst > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst)
	}
	return h
}

// Hub returns the websocket hub; it must be run for /api/ws to work.
func (h *Handler) Hub() *Hub {
	return h.hub
}
