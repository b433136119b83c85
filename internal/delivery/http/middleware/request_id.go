package middleware

import (
	"context"
	"regexp"

	"go-jobsearch-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID echoes a well-formed X-Request-ID or generates one, and makes it
// and the client IP available to handlers and usecases.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !requestIDPattern.MatchString(id) {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		setValue(c, domain.KeyRequestID, id)
		setValue(c, domain.KeyClientIP, c.ClientIP())

		c.Next()
	}
}

// setValue stores v under key in both the gin context and the request context.
func setValue(c *gin.Context, key domain.CtxKey, v string) {
	c.Set(string(key), v)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), key, v))
}
