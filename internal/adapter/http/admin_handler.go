package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"corporate-loan-backend/internal/usecase/loan"
)

type AdminHandler struct{ uc *loan.Usecase }

func NewAdminHandler(uc *loan.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

// Decision handles PATCH /api/admin/loans/:id/decision.
// approved is required; amount and rate matter only when approving.
func (h *AdminHandler) Decision(c echo.Context) error {
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "approved must be true or false"})
	}

	in := loan.DecideInput{Approved: approved}
	if approved {
		amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
		if err != nil || amount <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be a positive number"})
		}
		rate, err := strconv.ParseFloat(c.QueryParam("rate"), 64)
		if err != nil || rate < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rate must be a non-negative number"})
		}
		in.Amount = amount
		in.Rate = rate
	}

	dto, err := h.uc.Decide(c.Request().Context(), c.Param("id"), Actor(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.SoftDelete(c.Request().Context(), c.Param("id"), Actor(c)); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
