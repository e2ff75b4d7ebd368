package models

import "github.com/golang-jwt/jwt/v5"

// Roles allowed on the admin surface.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// Admin permissions
const (
	PermissionIntegrationLogsRead = "integration_logs:read"
)

type AdminClaims struct {
	jwt.RegisteredClaims
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *AdminClaims) HasPermission(permission string) bool {
	if c.Role == RoleSuperAdmin {
		return true
	}
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
