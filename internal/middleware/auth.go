// Package middleware provides HTTP middleware for the donation platform.
package middleware

import (
	"net/http"
	"strings"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/service"
	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key under which authenticated claims are stored.
const ClaimsKey = "claims"

// Auth returns middleware that authenticates the bearer token on protected
// routes. Valid claims are stored in the request context; anything else is
// rejected with 401.
func Auth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ExtractToken pulls the bearer token out of the Authorization header,
// returning "" when the header is missing or malformed.
func ExtractToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// ClaimsFromContext returns the authenticated claims stored by Auth, nil when
// the route was not protected.
func ClaimsFromContext(c *gin.Context) *service.Claims {
	value, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}
