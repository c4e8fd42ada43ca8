// app/echoServer/middleware.go
package echoServer

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/jwtx"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/respond"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
			)
			return err
		}
	}
}

// AuthContext runs after the JWT middleware has verified the token. It
// resolves the claims into a typed jwtx.AuthContext so handlers never
// touch raw claims.
func AuthContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ac, err := jwtx.FromToken(c)
			if err != nil {
				return respond.Message(c, http.StatusUnauthorized, "unauthorized")
			}
			jwtx.Store(c, ac)
			return next(c)
		}
	}
}

// RequireAdmin rejects non-admin callers before any business logic runs.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ac, ok := jwtx.FromContext(c)
			if !ok {
				return respond.Message(c, http.StatusUnauthorized, "unauthorized")
			}
			if !ac.IsAdmin {
				return respond.Message(c, http.StatusForbidden, "Oops you do not have the permission to access this resource.")
			}
			return next(c)
		}
	}
}
