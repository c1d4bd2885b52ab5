package utils

import (
	"net/http"
	"time"

	"github.com/marcus-crane/steamwebapi/shared"
)

const (
	UserAgent = shared.USER_AGENT
)

type UARoundtripper struct {
	RT        http.RoundTripper
	UserAgent string
}

func (uart *UARoundtripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ua := uart.UserAgent
	if ua == "" {
		ua = UserAgent
	}
	// RoundTrippers must not modify the caller's request
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", ua)
	rt := uart.RT
	if rt == nil {
		rt = http.DefaultTransport
	}
	return rt.RoundTrip(r)
}

func NewHTTPClient(timeout time.Duration, userAgent string) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &UARoundtripper{UserAgent: userAgent},
	}
}
