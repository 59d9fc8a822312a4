package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/examhall/internal/pkg/logger"
)

// RequestLogger logs one structured line per completed request.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		event := logger.Info()
		if ctx.Writer.Status() >= 500 {
			event = logger.Error()
		} else if ctx.Writer.Status() >= 400 {
			event = logger.Warn()
		}

		event.
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIP", ctx.ClientIP()).
			Str("requestID", ctx.GetString(RequestIDKey)).
			Msg("Request completed")
	}
}
