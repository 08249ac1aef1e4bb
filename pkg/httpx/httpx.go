// SPDX-License-Identifier: MPL-2.0

// Package httpx provides one-call JSON round trips over HTTP. It forwards to
// resty and adds only error shaping: transport failures come back annotated,
// and non-2xx responses become a *StatusError.
package httpx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"resty.dev/v3"

	"github.com/axlekit/axle/pkg/diag"
)

// DefaultTimeout bounds requests made by clients from NewClient.
const DefaultTimeout = 30 * time.Second

// NewClient returns a resty client with the library's defaults applied.
// Callers should Close it when done.
func NewClient() *resty.Client {
	return resty.New().SetTimeout(DefaultTimeout)
}

// StatusError reports a response with a non-2xx status.
type StatusError struct {
	// Status is the HTTP status code.
	Status int
	// Body is the response body, possibly truncated for display.
	Body string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("unexpected HTTP status %d", e.Status)
	if body := strings.TrimSpace(e.Body); body != "" {
		const max = 200
		if len(body) > max {
			body = body[:max] + "..."
		}
		msg += ": " + body
	}
	return msg
}

// GetJSON fetches url and decodes the JSON response into a T.
func GetJSON[T any](ctx context.Context, c *resty.Client, url string) (T, error) {
	var out T
	res, err := c.R().SetContext(ctx).SetResult(&out).Get(url)
	if err != nil {
		return out, diag.WrapPath(err, "http get", url)
	}
	log.Debug("http round trip", "method", "GET", "url", url, "status", res.StatusCode())
	if res.IsError() {
		return out, diag.WrapPath(&StatusError{Status: res.StatusCode(), Body: res.String()}, "http get", url)
	}
	return out, nil
}

// PostJSON sends body as JSON to url and decodes the JSON response into a T.
func PostJSON[T any](ctx context.Context, c *resty.Client, url string, body any) (T, error) {
	var out T
	res, err := c.R().SetContext(ctx).SetBody(body).SetResult(&out).Post(url)
	if err != nil {
		return out, diag.WrapPath(err, "http post", url)
	}
	log.Debug("http round trip", "method", "POST", "url", url, "status", res.StatusCode())
	if res.IsError() {
		return out, diag.WrapPath(&StatusError{Status: res.StatusCode(), Body: res.String()}, "http post", url)
	}
	return out, nil
}
