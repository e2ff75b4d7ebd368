// Package middleware provides the HTTP middleware shared by the gateway and admin routes.
package middleware

import (
	"log"
	"strings"

	"paygate/internal/models"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth validates the bearer token on admin routes and stores its claims
// in the request context.
func AdminAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.Unauthorized(c, "missing authorization header")
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.Unauthorized(c, "invalid authorization format")
		}

		claims, err := utils.ParseAdminToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			log.Printf("Admin token validation error: %v", err)
			return utils.Unauthorized(c, "invalid token")
		}

		if claims.Role != models.RoleSuperAdmin && claims.Role != models.RoleAdmin {
			log.Printf("Access denied: user %s has role %s", claims.UserID, claims.Role)
			return utils.Forbidden(c, "Insufficient permissions")
		}

		c.Locals(utils.ClaimsKey, claims)
		return c.Next()
	}
}

// HasPermission returns a middleware that checks for a specific permission.
// Super admins pass every check.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.GetAdminClaims(c)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		if !claims.HasPermission(permission) {
			return utils.Forbidden(c, "Insufficient permissions")
		}
		return c.Next()
	}
}
