package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"firm-digest/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AdminTokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokens AdminTokenValidator
}

const ctxOperatorKey = "operator"

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAdmin accepts only bearer tokens carrying the admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}
		if claims.Role != jwt.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			c.Abort()
			return
		}

		c.Set(ctxOperatorKey, claims.Subject)
		c.Next()
	}
}

func GetOperator(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxOperatorKey)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
