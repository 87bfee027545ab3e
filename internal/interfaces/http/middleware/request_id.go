package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"campus-hub.backend/pkg/logger"
)

// RequestIDMiddleware assigns each request a unique id, honoring an
// incoming X-Request-ID header, and exposes it to the structured logger
// through the request context.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(logger.RequestIDKey, id)
		c.Header("X-Request-ID", id)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, id) //nolint:staticcheck // string key shared with pkg/logger
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
