package middleware

import (
	"github.com/gin-gonic/gin"

	"periscope/pkg/util"
)

// RequestIDHeader carries the request id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key the other middlewares read.
const requestIDKey = "request_id"

// RequestID returns a gin middleware that tags every request with an id.
// An id supplied by the dashboard is kept so a request can be followed
// across both sides.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = util.GenerateUUID()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
