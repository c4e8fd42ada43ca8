// Package jwtx turns verified JWT claims into the typed auth context the
// handlers consume.
package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const contextKey = "auth_context"

// AuthContext is the resolved identity of the caller for one request.
type AuthContext struct {
	UserID  int64
	IsAdmin bool
}

// FromToken reads the verified token placed in the context by the JWT
// middleware and extracts the identity claims.
func FromToken(c echo.Context) (AuthContext, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return AuthContext{}, errors.New("no jwt token in context")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return AuthContext{}, errors.New("invalid jwt claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return AuthContext{}, errors.New("sub missing in claims")
	}
	admin, _ := claims["admin"].(bool)
	return AuthContext{UserID: int64(sub), IsAdmin: admin}, nil
}

// Store attaches the auth context for downstream handlers.
func Store(c echo.Context, ac AuthContext) { c.Set(contextKey, ac) }

// FromContext returns the auth context stored by the auth middleware.
func FromContext(c echo.Context) (AuthContext, bool) {
	ac, ok := c.Get(contextKey).(AuthContext)
	return ac, ok
}
