package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "address-search-client"

// HTTPClient is a resty client preconfigured for JSON calls against a single
// base URL.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client bound to baseURL. A
// non-positive timeout leaves the resty default (no timeout) in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
