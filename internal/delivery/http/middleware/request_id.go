package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"northern-forge-site/internal/delivery/http/response"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = response.RequestIDKey
)

// RequestID tags every request with an id, reusing a well-formed incoming one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
