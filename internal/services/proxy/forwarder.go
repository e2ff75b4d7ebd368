package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Outcome captures a single upstream attempt. Err is set when no usable JSON
// response was obtained; StatusCode and Body are then not relayed.
type Outcome struct {
	StatusCode int
	Body       json.RawMessage
	Err        error
}

// Succeeded reports whether the upstream answered with valid JSON and a 2xx status.
func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.StatusCode >= 200 && o.StatusCode < 300
}

// Call is the authenticated upstream request built from the merchant's credentials.
type Call struct {
	URL      string
	Username string
	Password string
	Body     []byte
}

// Forwarder performs exactly one upstream attempt; there is no retry.
type Forwarder interface {
	Forward(ctx context.Context, call Call) Outcome
}

// HTTPForwarder posts JSON with Basic auth through Fiber's fasthttp client.
type HTTPForwarder struct {
	timeout time.Duration
}

func NewHTTPForwarder(timeout time.Duration) *HTTPForwarder {
	return &HTTPForwarder{timeout: timeout}
}

func (f *HTTPForwarder) Forward(ctx context.Context, call Call) Outcome {
	if err := ctx.Err(); err != nil {
		return Outcome{Err: fmt.Errorf("request cancelled before forwarding: %w", err)}
	}

	agent := fiber.Post(call.URL)
	agent.BasicAuth(call.Username, call.Password)
	agent.ContentType(fiber.MIMEApplicationJSON)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Body(call.Body)
	if f.timeout > 0 {
		agent.Timeout(f.timeout)
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return Outcome{StatusCode: status, Err: errors.Join(errs...)}
	}

	if !json.Valid(body) {
		return Outcome{
			StatusCode: status,
			Err:        fmt.Errorf("upstream returned a non-JSON response (status %d)", status),
		}
	}

	return Outcome{StatusCode: status, Body: json.RawMessage(body)}
}

// targetURL joins the base URL and endpoint with exactly one slash.
func targetURL(baseURL, endpoint string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}
