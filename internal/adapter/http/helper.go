package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	loanDomain "corporate-loan-backend/internal/domain/loan"
	userDomain "corporate-loan-backend/internal/domain/user"
	"corporate-loan-backend/internal/usecase/auth"
)

// writeDomainError maps domain sentinels to HTTP responses. Anything
// unrecognized is a storage/infrastructure failure.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	case errors.Is(err, loanDomain.ErrInvalidState):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, userDomain.ErrEmailTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidRole):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
