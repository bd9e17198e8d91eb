package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HeaderTraceID carries the per-request trace identifier.
const HeaderTraceID = "X-Trace-ID"

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with JSON accept headers and
// the given per-request timeout. Retries stay disabled.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
