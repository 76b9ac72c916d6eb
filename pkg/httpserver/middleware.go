package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// requestLogger logs each request with a generated request ID.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	reqLog := log.With().Str("component", "http").Logger()
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = "snf_" + xid.New().String()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		event := reqLog.Info()
		if c.Writer.Status() >= 500 {
			event = reqLog.Error()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("Request handled")
	}
}
