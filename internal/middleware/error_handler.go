package middleware

import (
	"net/http"
	"time"

	"github.com/matheuseschaves/supermarket-tracker/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const msgInternal = "Erro interno do servidor"

// reqLog returns the global logger tagged with the request id and route.
func reqLog(c *gin.Context) zerolog.Logger {
	return log.With().
		Str("request_id", c.GetString(RequestIDKey)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Logger()
}

// ErrorHandler answers 500 for errors attached with c.Error when the
// handler has not written a response. Only the generic message is sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		l := reqLog(c)
		for _, e := range c.Errors {
			l.Error().Err(e.Err).Msg("request failed")
		}

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New(msgInternal))
		}
	}
}

// Recovery turns a panic into a 500 with the generic message.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				l := reqLog(c)
				l.Error().Interface("panic", r).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New(msgInternal))
			}
		}()
		c.Next()
	}
}

// Logger writes one line per request. Client errors log at warn, server
// errors at error, health probes at debug.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		l := reqLog(c)
		var ev *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			ev = l.Error()
		case status >= http.StatusBadRequest:
			ev = l.Warn()
		case c.Request.URL.Path == "/health":
			ev = l.Debug()
		default:
			ev = l.Info()
		}
		ev.Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
