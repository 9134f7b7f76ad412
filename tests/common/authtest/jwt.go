//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"firm-digest/internal/pkg/config"
	"firm-digest/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.AdminConfig
}

func NewJWTHelper(cfg config.AdminConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service() *jwt.Service {
	return jwt.NewService(h.cfg.JWTSecret, h.cfg.TokenDuration)
}

func (h *JWTHelper) AdminToken(t *testing.T, operator string) string {
	t.Helper()
	token, err := h.Service().GenerateToken(operator)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ExpiredToken(t *testing.T, operator string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.JWTSecret, -time.Minute).GenerateToken(operator)
	require.NoError(t, err)
	return token
}

// RoleToken signs a token the service itself never issues, for testing role checks.
func (h *JWTHelper) RoleToken(t *testing.T, operator, role string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.Claims{
		Role: role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "firm-digest",
			Subject:   operator,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	require.NoError(t, err)
	return token
}
