package proxy

import (
	"strings"

	apperrors "paygate/internal/errors"
	"paygate/internal/models"
)

type capability struct {
	name    string
	enabled func(*models.ProcessorCredential) bool
}

// Endpoints whose first path segment requires an optional payment method.
var capabilities = map[string]capability{
	"apple-pay": {
		name:    "Apple Pay",
		enabled: func(c *models.ProcessorCredential) bool { return c.ApplePayEnabled },
	},
	"google-pay": {
		name:    "Google Pay",
		enabled: func(c *models.ProcessorCredential) bool { return c.GooglePayEnabled },
	},
}

func checkCapability(endpoint string, cred *models.ProcessorCredential) error {
	segment, _, _ := strings.Cut(endpointPath(endpoint), "/")
	capab, ok := capabilities[segment]
	if !ok || capab.enabled(cred) {
		return nil
	}
	return apperrors.CapabilityDisabled(capab.name)
}
