package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/researchsphere/hub-api/internal/core/ports"
)

// IdentityKey is the echo.Context key under which the decoded
// *domain.Identity is stored after successful verification.
const IdentityKey = "identity"

// Auth is the mandatory request guard: it extracts the bearer token, verifies
// it, and injects the decoded identity into the context. A missing or
// malformed header and any verification failure all halt the request with
// 401 before it reaches a handler.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

// OptionalAuth is the optional request guard: it runs the same extraction and
// verification as Auth, but a missing, malformed, or invalid token is
// silently ignored and the request proceeds anonymous. The identity is only
// populated on success, so handlers can personalize output for known users
// without blocking public access.
func OptionalAuth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err == nil {
				if identity, verr := verifier.Verify(token); verr == nil {
					c.Set(IdentityKey, identity)
				}
			}
			return next(c)
		}
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// The header must split into exactly two space-delimited parts and the scheme
// must be exactly "Bearer" (case-sensitive).
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
