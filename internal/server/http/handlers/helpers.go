package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/programmer-tapa/order-service/internal/server/http/middleware"
	"github.com/programmer-tapa/order-service/internal/service"
)

// CurrentIdentity extracts authenticated caller identity from context.
// Returns nil when the request carried no valid token.
func CurrentIdentity(c *gin.Context) *service.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return nil
	}
	identity, ok := val.(service.Identity)
	if !ok {
		return nil
	}
	return &identity
}
