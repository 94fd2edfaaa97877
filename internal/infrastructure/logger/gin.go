package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLoggerKey is the gin context key for the request-scoped logger
const requestLoggerKey = "request_logger"

// RequestLogger returns a gin middleware that emits one structured line
// per request. Once the JWT middleware has run, the line carries the
// realm the caller authenticated in, so admin, manager, and portal
// traffic can be told apart in the logs.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID, _ := c.Get("request_id")
		id, _ := requestID.(string)

		reqLogger := base.With(
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("route", c.Request.URL.Path),
		)
		c.Set(requestLoggerKey, reqLogger)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("took", time.Since(start)),
			zap.String("remote", c.ClientIP()),
			zap.Int("bytes_out", c.Writer.Size()),
		}
		if realm, ok := c.Get("jwt_realm"); ok {
			if r, ok := realm.(string); ok && r != "" {
				fields = append(fields, zap.String("realm", r))
			}
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if agent := c.Request.UserAgent(); agent != "" {
			fields = append(fields, zap.String("agent", agent))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			reqLogger.Error("request failed", fields...)
		case status >= http.StatusBadRequest:
			reqLogger.Warn("request rejected", fields...)
		default:
			reqLogger.Info("request served", fields...)
		}
	}
}

// Recovery returns a gin middleware that turns panics into 500 responses
// after logging the stack.
func Recovery(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestID, _ := c.Get("request_id")
				id, _ := requestID.(string)

				base.Error("panic while serving request",
					zap.String("request_id", id),
					zap.String("method", c.Request.Method),
					zap.String("route", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// FromGinContext returns the request-scoped logger, or a no-op logger
// when the middleware has not run.
func FromGinContext(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(requestLoggerKey); ok {
		if reqLogger, ok := l.(*zap.Logger); ok {
			return reqLogger
		}
	}
	return zap.NewNop()
}
