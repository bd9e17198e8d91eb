package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-dialer/internal/config"
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/utils"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/goccy/go-json"
)

type httpTokenAdapter struct {
	client   *utils.HTTPClient
	tokenURL string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPTokenAdapter constructs the resty implementation of [TokenAdapter].
// The endpoint must be an absolute http(s) URL; the request timeout comes
// from tokenCfg.RequestTimeout.
func NewHTTPTokenAdapter(tokenCfg config.Token, log *logger.Logger) (TokenAdapter, error) {
	tokenURL, err := normalizeURL(tokenCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	return &httpTokenAdapter{
		client:   utils.NewHTTPClient(tokenCfg.RequestTimeout),
		tokenURL: tokenURL,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   log.WithComponent("token"),
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return u.String(), nil
}

// FetchToken implements [TokenAdapter].
func (h *httpTokenAdapter) FetchToken(ctx context.Context) (models.Credential, error) {
	traceID := h.traceIDs.Generate()
	log := h.logger.With().Str("trace_id", traceID).Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(utils.HeaderTraceID, traceID).
		Get(h.tokenURL)
	if err != nil {
		log.Err(err).Msg("token request failed")
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("token endpoint returned an error")
		return "", err
	}

	var tokenResp models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeToken, err)
	}
	if tokenResp.Token == "" {
		return "", ErrEmptyToken
	}

	log.Debug().Dur("took", resp.Time()).Msg("token fetched")
	return models.Credential(tokenResp.Token), nil
}
