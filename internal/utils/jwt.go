package utils

import (
	"errors"
	"time"

	"paygate/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "paygate"

var ErrMissingSecret = errors.New("admin jwt secret not configured")

// GenerateAdminToken signs an HS256 access token for the admin surface.
func GenerateAdminToken(claims models.AdminClaims, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    tokenIssuer,
		Subject:   claims.UserID,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAdminToken parses and validates an admin token.
func ParseAdminToken(tokenStr, secret string) (*models.AdminClaims, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	claims := &models.AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
