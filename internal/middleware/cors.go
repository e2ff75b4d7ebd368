package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Headers shared by every gateway response.
const (
	CORSAllowHeaders = "authorization, x-client-info, apikey, content-type"
	CORSAllowMethods = "POST, OPTIONS"
)

// CORSHeaders stamps the shared CORS headers on every response of the routes it
// guards. allowOrigins is "*" or a comma separated list; a listed request origin
// is echoed back.
func CORSHeaders(allowOrigins string) fiber.Handler {
	allowAll := strings.TrimSpace(allowOrigins) == "*"
	allowed := make(map[string]struct{})
	for _, o := range strings.Split(allowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[strings.ToLower(o)] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		if allowAll {
			c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		} else {
			c.Vary(fiber.HeaderOrigin)
			origin := c.Get(fiber.HeaderOrigin)
			if _, ok := allowed[strings.ToLower(origin)]; ok {
				c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			}
		}
		c.Set(fiber.HeaderAccessControlAllowHeaders, CORSAllowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, CORSAllowMethods)
		return c.Next()
	}
}

// Preflight answers OPTIONS with the CORS headers already set and no body.
// It is registered without the rate limiter.
func Preflight(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
