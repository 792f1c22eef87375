package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// ctxIdentity extracts the claims injected by the Auth middleware and
// fast-fails before any service call: both values must be present, since
// their presence proves the middleware actually ran on this route.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" || roleStr == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, domain.Role(roleStr), nil
}
