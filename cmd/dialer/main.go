package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dialer/internal/adapter"
	"github.com/MKhiriev/go-dialer/internal/client"
	"github.com/MKhiriev/go-dialer/internal/config"
	"github.com/MKhiriev/go-dialer/internal/dialer"
	handler "github.com/MKhiriev/go-dialer/internal/handler/http"
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/server"
	"github.com/MKhiriev/go-dialer/internal/tui"
	"github.com/MKhiriev/go-dialer/internal/voice"
	"github.com/MKhiriev/go-dialer/internal/voice/baresip"
	"github.com/MKhiriev/go-dialer/internal/voice/sipua"
	"github.com/MKhiriev/go-dialer/internal/workers"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-dialer").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-dialer", cfg.App.LogFile, cfg.App.LogLevel)

	tokens, err := adapter.NewHTTPTokenAdapter(cfg.Token, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create token adapter")
	}

	codecs, err := voice.ParseCodecPreferences(cfg.Device.Codecs)
	if err != nil {
		log.Fatal().Err(err).Msg("parse codec preferences")
	}

	var factory voice.DeviceFactory
	switch cfg.Device.Driver {
	case config.DriverBaresip:
		factory = baresip.NewFactory(cfg.Baresip)
	default:
		factory = sipua.NewFactory(cfg.SIP)
	}

	opts := voice.Options{
		CodecPreferences: codecs,
		LogLevel:         logger.ParseLevel(cfg.Device.LogLevel, zerolog.WarnLevel),
		Logger:           log,
	}
	newAdapter := func(credential models.Credential) (voice.CallAdapter, error) {
		a, err := voice.NewAdapter(factory, credential, opts)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	controller := dialer.NewController(tokens, newAdapter, log)
	ui := tui.New(controller, buildInfo, log)

	var background []workers.Worker
	if cfg.Control.Enabled() {
		srv, err := server.NewServer(handler.NewHandler(controller, buildInfo, cfg.Control, log), cfg.Control, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create control server")
		}
		background = append(background, srv)
	}

	app, err := client.NewApp(controller, ui, log, background...)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
