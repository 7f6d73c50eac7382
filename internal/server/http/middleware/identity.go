package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/programmer-tapa/order-service/internal/pkg/auth"
)

// IdentityContextKey is a gin context key for the authenticated identity.
const IdentityContextKey = "identity"

// Identity parses the bearer token into a caller identity. A missing or
// invalid token leaves the identity unset; the service layer answers
// UNAUTHORIZED, keeping the envelope contract for unauthenticated calls.
func Identity(tokens *pkgAuth.TokenStrategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := tokens.Parse(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
