package loan

import (
	"time"

	domain "corporate-loan-backend/internal/domain/loan"
)

type FinancialsInput struct {
	Revenue float64 `json:"revenue"`
	EBITDA  float64 `json:"ebitda"`
	Rating  string  `json:"rating"`
}

// LoanInput carries the operator-supplied loan terms. Create consumes
// all of it; Update only the draft-editable subset.
type LoanInput struct {
	ClientName           string           `json:"client_name"`
	LoanType             string           `json:"loan_type"`
	RequestedAmount      float64          `json:"requested_amount"`
	TenureMonths         int              `json:"tenure_months"`
	ProposedInterestRate float64          `json:"proposed_interest_rate"`
	Financials           *FinancialsInput `json:"financials"`
}

type DecideInput struct {
	Approved bool
	Amount   float64
	Rate     float64
}

type ActionDTO struct {
	By        string    `json:"by"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

type LoanDTO struct {
	LoanID               string           `json:"id"`
	ClientName           string           `json:"client_name"`
	LoanType             string           `json:"loan_type"`
	RequestedAmount      float64          `json:"requested_amount"`
	TenureMonths         int              `json:"tenure_months"`
	ProposedInterestRate float64          `json:"proposed_interest_rate"`
	Financials           *FinancialsInput `json:"financials,omitempty"`
	Status               string           `json:"status"`
	SanctionedAmount     *float64         `json:"sanctioned_amount,omitempty"`
	ApprovedInterestRate *float64         `json:"approved_interest_rate,omitempty"`
	ApprovedBy           *string          `json:"approved_by,omitempty"`
	ApprovedAt           *time.Time       `json:"approved_at,omitempty"`
	CreatedBy            string           `json:"created_by"`
	CreatedAt            time.Time        `json:"created_at"`
	Actions              []ActionDTO      `json:"actions"`
}

type PageDTO struct {
	Items      []LoanDTO `json:"items"`
	Page       int       `json:"page"`
	Size       int       `json:"size"`
	TotalItems int64     `json:"total_items"`
	TotalPages int       `json:"total_pages"`
}

func (in LoanInput) fields() domain.DraftFields {
	f := domain.DraftFields{
		ClientName:           in.ClientName,
		LoanType:             domain.Type(in.LoanType),
		RequestedAmount:      in.RequestedAmount,
		TenureMonths:         in.TenureMonths,
		ProposedInterestRate: in.ProposedInterestRate,
	}
	if in.Financials != nil {
		f.Financials = &domain.Financials{
			Revenue: in.Financials.Revenue,
			EBITDA:  in.Financials.EBITDA,
			Rating:  in.Financials.Rating,
		}
	}
	return f
}

func toDTO(l *domain.Loan) *LoanDTO {
	dto := &LoanDTO{
		LoanID:               l.LoanID,
		ClientName:           l.ClientName,
		LoanType:             string(l.LoanType),
		RequestedAmount:      l.RequestedAmount,
		TenureMonths:         l.TenureMonths,
		ProposedInterestRate: l.ProposedInterestRate,
		Status:               string(l.Status),
		SanctionedAmount:     l.SanctionedAmount,
		ApprovedInterestRate: l.ApprovedInterestRate,
		ApprovedBy:           l.ApprovedBy,
		ApprovedAt:           l.ApprovedAt,
		CreatedBy:            l.CreatedBy,
		CreatedAt:            l.CreatedAt,
	}
	if l.Financials != nil {
		dto.Financials = &FinancialsInput{
			Revenue: l.Financials.Revenue,
			EBITDA:  l.Financials.EBITDA,
			Rating:  l.Financials.Rating,
		}
	}
	dto.Actions = make([]ActionDTO, 0, len(l.Actions))
	for _, a := range l.Actions {
		dto.Actions = append(dto.Actions, ActionDTO{By: a.By, Action: string(a.Action), Timestamp: a.Timestamp})
	}
	return dto
}
