package proxy

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	apperrors "paygate/internal/errors"
	"paygate/internal/utils/validation"
)

// DefaultEndpoint is forwarded to when the caller names none.
const DefaultEndpoint = "payments"

// An endpoint is a relative path, optionally followed by a query string. Neither
// part may contain a scheme or host, so forwarding stays on the configured base URL.
var (
	endpointPathPattern  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9/_.-]*$`)
	endpointQueryPattern = regexp.MustCompile(`^[A-Za-z0-9._~=&%+,-]*$`)
)

// Request is the normalized inbound proxy call.
type Request struct {
	MerchantID string          `json:"merchantId" validate:"required"`
	Endpoint   string          `json:"endpoint"`
	Data       json.RawMessage `json:"data"`
}

// ParseRequest decodes and validates a proxy request body.
func ParseRequest(body []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return Request{}, apperrors.ErrInvalidBody
	}

	req.MerchantID = strings.TrimSpace(req.MerchantID)
	if err := validation.Struct(req); err != nil {
		return Request{}, err
	}

	req.Endpoint = strings.TrimLeft(strings.TrimSpace(req.Endpoint), "/")
	if path, query, hasQuery := strings.Cut(req.Endpoint, "?"); hasQuery {
		req.Endpoint = strings.TrimRight(path, "/") + "?" + query
	} else {
		req.Endpoint = strings.TrimRight(req.Endpoint, "/")
	}
	if req.Endpoint == "" {
		req.Endpoint = DefaultEndpoint
	}
	if !validEndpoint(req.Endpoint) {
		return Request{}, apperrors.ErrInvalidEndpoint
	}

	trimmed := bytes.TrimSpace(req.Data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		req.Data = json.RawMessage("{}")
	}

	return req, nil
}

func validEndpoint(endpoint string) bool {
	path, query, _ := strings.Cut(endpoint, "?")
	return endpointPathPattern.MatchString(path) &&
		!strings.Contains(path, "..") &&
		endpointQueryPattern.MatchString(query)
}

// endpointPath strips the query string from a normalized endpoint.
func endpointPath(endpoint string) string {
	path, _, _ := strings.Cut(endpoint, "?")
	return path
}
