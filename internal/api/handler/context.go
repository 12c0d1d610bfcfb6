package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
)

// ctxActor extracts the acting identity injected by the Auth middleware.
// Both the subject id and the role must be present; a token missing either
// is rejected with 401 before any service call.
func ctxActor(c echo.Context) (domain.Actor, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Actor{ID: id, Role: role}, nil
}

// ctxOptionalActor returns the actor when the request carried a valid token
// and nil otherwise. Used on read paths open to anonymous callers.
func ctxOptionalActor(c echo.Context) *domain.Actor {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return nil
	}
	return &domain.Actor{ID: id, Role: role}
}
