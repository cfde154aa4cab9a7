package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestLogger writes one line per request once it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("trace_id", c.GetString("trace_id")).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("remote", c.ClientIP()).
			Msg("request completed")
	}
}
