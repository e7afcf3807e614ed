package httpapi

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"aromashop/internal/metrics"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "session_id"
	sessionKey    = "session_id"
	requestHeader = "X-Request-ID"

	sessionMaxAge = 30 * 24 * 60 * 60
)

// session ids become store key segments, keep them to a safe alphabet
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// requestLogger replaces gin.Logger: one zerolog line per request, the request-scoped
// logger stored in the request context, and the http counters.
func requestLogger(base zerolog.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader(requestHeader)
		if reqID == "" || len(reqID) > 64 {
			reqID = uuid.NewString()
		}
		c.Header(requestHeader, reqID)

		l := base.With().Str("request_id", reqID).Logger()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		if m != nil {
			m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
			m.LatencyMS.WithLabelValues(route).Observe(float64(elapsed.Milliseconds()))
		}

		ev := l.Info()
		if status >= http.StatusInternalServerError {
			ev = l.Error()
		} else if status >= http.StatusBadRequest {
			ev = l.Warn()
		}
		ev.Str("method", c.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// sessionID resolves the storefront session from the header or cookie, issuing a new
// one when neither carries a usable id.
func sessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeader)
		if !sessionIDPattern.MatchString(id) {
			id, _ = c.Cookie(sessionCookie)
		}
		if !sessionIDPattern.MatchString(id) {
			id = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		c.Header(sessionHeader, id)
		c.Set(sessionKey, id)

		l := zerolog.Ctx(c.Request.Context()).With().Str("session_id", id).Logger()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))
		c.Next()
	}
}

func sessionFrom(c *gin.Context) string {
	return c.GetString(sessionKey)
}
