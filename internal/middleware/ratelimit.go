package middleware

import (
	apperrors "paygate/internal/errors"
	"paygate/internal/ratelimit"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// RateLimit rejects callers that exceeded limiter's window with 429. Callers
// are keyed by IP, which honours the proxy header when one is configured on the app.
func RateLimit(limiter ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.IP()
		if key == "" {
			key = ratelimit.UnknownKey
		}

		if !limiter.Check(c.UserContext(), key) {
			return utils.RespondError(c, apperrors.ErrRateLimitExceeded)
		}
		return c.Next()
	}
}
