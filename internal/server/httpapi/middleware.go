package httpapi

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	claimsKey       = "auth.claims"
)

func requestLogger(l logging.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id, _ = common.MakeRandHexString(8)
		}
		c.Header(requestIDHeader, id)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		latency := time.Since(start)

		if m != nil {
			m.ObserveRequest(c.Request.Method, route, strconv.Itoa(status), latency)
		}

		l.Info(c.Request.Context(), "request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency.String(),
		)
	}
}

// recovery turns a panic into a 500 with the generic message.
func recovery(l logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		l.Error(c.Request.Context(), "panic in handler", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
	})
}

// tokenFromRequest prefers the cookie, then the Authorization header.
func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(common.TokenCookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader(common.AuthorizationHeaderName)
	if strings.HasPrefix(header, common.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, common.BearerPrefix))
	}
	return ""
}

// requireToken rejects requests without a valid session token and stores
// the verified claims on the context.
func (h *handlers) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			h.record("user_data", metrics.OutcomeRejected)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgNoToken})
			return
		}

		claims, err := h.users.Authenticate(token)
		if err != nil {
			h.logger.Debug(c.Request.Context(), "token rejected", "error", err)
			h.record("user_data", metrics.OutcomeRejected)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgBadToken})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}
