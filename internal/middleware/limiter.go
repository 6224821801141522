package middleware

import (
	"github.com/marcomarassi/note-keeper-service/pkg/app"
	"github.com/marcomarassi/note-keeper-service/pkg/code"
	"github.com/marcomarassi/note-keeper-service/pkg/limiter"

	"github.com/gin-gonic/gin"
)

// RateLimiter rejects requests once the matching bucket runs dry.
func RateLimiter(l limiter.Face) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.Key(c)
		if bucket, ok := l.GetBucket(key); ok {
			if bucket.TakeAvailable(1) == 0 {
				app.NewResponse(c).ToResponse(code.ErrorTooManyRequests)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
