package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loanDomain "corporate-loan-backend/internal/domain/loan"
	"corporate-loan-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type financialsReq struct {
	Revenue float64 `json:"revenue" validate:"gte=0"`
	EBITDA  float64 `json:"ebitda"`
	Rating  string  `json:"rating"`
}

type loanReq struct {
	ClientName           string         `json:"client_name"            validate:"required"`
	LoanType             string         `json:"loan_type"              validate:"required,loantype"`
	RequestedAmount      float64        `json:"requested_amount"       validate:"required,gt=0,dec2"`
	TenureMonths         int            `json:"tenure_months"          validate:"required,gt=0"`
	ProposedInterestRate float64        `json:"proposed_interest_rate" validate:"gte=0"`
	Financials           *financialsReq `json:"financials"`
}

func (r loanReq) toInput() loan.LoanInput {
	in := loan.LoanInput{
		ClientName:           r.ClientName,
		LoanType:             r.LoanType,
		RequestedAmount:      r.RequestedAmount,
		TenureMonths:         r.TenureMonths,
		ProposedInterestRate: r.ProposedInterestRate,
	}
	if r.Financials != nil {
		in.Financials = &loan.FinancialsInput{
			Revenue: r.Financials.Revenue,
			EBITDA:  r.Financials.EBITDA,
			Rating:  r.Financials.Rating,
		}
	}
	return in
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req loanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), req.toInput(), Actor(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	pr := loanDomain.PageRequest{
		Page: queryInt(c, "page", 0),
		Size: queryInt(c, "size", 20),
	}
	page, err := h.uc.List(c.Request().Context(), pr)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req loanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("id"), req.toInput(), Actor(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) SubmitLoan(c echo.Context) error {
	dto, err := h.uc.Submit(c.Request().Context(), c.Param("id"), Actor(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
