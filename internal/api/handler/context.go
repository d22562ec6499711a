package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/researchsphere/hub-api/internal/api/middleware"
	"github.com/researchsphere/hub-api/internal/core/domain"
)

// identityFrom returns the identity injected by the request guard, or nil on
// anonymous requests (optional guard, or no guard at all).
func identityFrom(c echo.Context) *domain.Identity {
	identity, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	return identity
}

// requireIdentity returns the identity or fails with 401. Presence proves the
// mandatory guard ran; its absence on a protected route is a wiring bug, but
// the response is the same 401 the guard itself would produce.
func requireIdentity(c echo.Context) (*domain.Identity, error) {
	identity := identityFrom(c)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
