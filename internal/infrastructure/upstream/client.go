// Package upstream holds the HTTP plumbing shared by the geocoding and
// weather provider clients.
package upstream

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "cityweather-services"
)

// NewClient returns a resty client bound to baseURL.
func NewClient(baseURL string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
}

// Cause describes a transport failure without the request URL, which for
// these providers carries the API credential in its query string.
func Cause(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	if errors.Is(err, context.Canceled) {
		return "request canceled"
	}

	var ue *url.Error
	if errors.As(err, &ue) {
		if ue.Timeout() {
			return "request timed out"
		}
		return ue.Err.Error()
	}
	return err.Error()
}

// Succeeded reports whether resp carries a 2xx status.
func Succeeded(resp *resty.Response) bool {
	code := resp.StatusCode()
	return code >= 200 && code < 300
}
