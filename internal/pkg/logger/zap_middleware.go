package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/roadbuddy/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

// ZapEchoMiddleware logs every request served by echo. Successful health
// checks are logged at debug level.
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status
			path := req.URL.Path
			if raw := req.URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			requestID := requestcontext.GetRequestID(req.Context())
			if requestID == "" {
				requestID = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			if isHealthCheck(req.URL.Path) && status < 400 {
				logger.Debug("Health check",
					zap.String("path", path),
					zap.Int("status", status),
					zap.Int64("latency_ms", latency.Milliseconds()),
				)
				return nil
			}

			userID := "anonymous"
			if uid := c.Get("user_id"); uid != nil {
				userID = fmt.Sprintf("%v", uid)
			}

			txn := newrelic.FromContext(req.Context())
			if txn != nil {
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, req.Method, path, c.RealIP(), userID, requestID, status, latency, err)
			return nil
		}
	}
}

func isHealthCheck(path string) bool {
	return path == "/ping" || strings.HasPrefix(path, "/health")
}
