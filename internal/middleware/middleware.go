// Package middleware holds the gin middleware shared by all routes.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shareit-platform/service-sharing/internal/response"
)

const (
	// HeaderSharerID carries the acting user's id, set by the gateway after
	// it has authenticated the caller.
	HeaderSharerID = "X-Sharer-User-Id"

	// HeaderRequestID carries the correlation id for a request.
	HeaderRequestID = "X-Request-ID"

	userIDKey    = "sharerUserID"
	requestIDKey = "requestID"
)

// RequestID attaches a correlation id to every request, generating one when
// the caller did not supply it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(HeaderRequestID, requestID)
		c.Next()
	}
}

// Logger logs one line per request with method, path, status and latency.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("request handled",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Recovery converts panics into 500 responses and logs the panic value.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.String("request_id", c.GetString(requestIDKey)),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorBody{Error: "internal server error"})
			}
		}()
		c.Next()
	}
}

// SharerID extracts the acting user's id from the X-Sharer-User-Id header.
// The gateway always sets it, so a missing or malformed value is a bad request.
func SharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderSharerID)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorBody{Error: "X-Sharer-User-Id header is required"})
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorBody{Error: "X-Sharer-User-Id header must be an integer"})
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// GetUserID returns the user id extracted by SharerID.
func GetUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
