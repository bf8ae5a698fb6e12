package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	userDomain "corporate-loan-backend/internal/domain/user"
	"corporate-loan-backend/internal/usecase/auth"
)

const (
	ctxActorKey = "auth.actor"
	ctxRoleKey  = "auth.role"
)

// JWTAuth parses the bearer token and stores the actor identity and
// role on the request context. Authorization beyond that (and beyond
// DRAFT-only editing) is route-level via RequireAdmin.
func JWTAuth(uc *auth.Usecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			const prefix = "Bearer "
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(h, prefix) {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
			}
			subject, role, err := uc.ParseToken(strings.TrimPrefix(h, prefix))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid token"})
			}
			c.Set(ctxActorKey, subject)
			c.Set(ctxRoleKey, role)
			return next(c)
		}
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if role, _ := c.Get(ctxRoleKey).(string); role != string(userDomain.RoleAdmin) {
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "admin role required"})
		}
		return next(c)
	}
}

// Actor returns the authenticated identity set by JWTAuth; empty if the
// route is unauthenticated.
func Actor(c echo.Context) string {
	s, _ := c.Get(ctxActorKey).(string)
	return s
}
