package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/programmer-tapa/order-service/internal/requestctx"
)

// CorrelationHeader carries the request correlation identifier.
const CorrelationHeader = "X-Correlation-ID"

// Correlation attaches a correlation identifier to the request context and
// echoes it in the response. The identifier lives on the request context
// only, so it cannot leak into another request.
func Correlation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(requestctx.With(c.Request.Context(), id))
		c.Header(CorrelationHeader, id)
		c.Next()
	}
}
