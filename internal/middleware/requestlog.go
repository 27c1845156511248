package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventistan/internal/logger"
)

// RequestLogger tags every request with an id (X-Request-ID, generated
// when absent), carries it in the request context for downstream log
// lines and logs one line per request once it is served.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			ctx := logger.WithContext(req.Context(), logger.String("request_id", id))
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("route", c.Path()),
				logger.String("uri", req.RequestURI),
				logger.Int("status", c.Response().Status),
				logger.Duration("latency", time.Since(start)),
				logger.String("remote_ip", c.RealIP()),
			}
			if uid, ok := UserID(c); ok {
				fields = append(fields, logger.String("user_id", uid))
			}
			switch status := c.Response().Status; {
			case status >= 500:
				logger.Error(ctx, "request", append(fields, logger.ErrorF(err))...)
			case status >= 400:
				logger.Warn(ctx, "request", fields...)
			default:
				logger.Info(ctx, "request", fields...)
			}
			return nil
		}
	}
}
