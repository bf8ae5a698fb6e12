package uow

import (
	"context"

	"corporate-loan-backend/internal/domain/loan"
	"corporate-loan-backend/internal/domain/user"
)

type Repos struct {
	Loans loan.Repository
	Users user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row before fn runs, so concurrent
	// writers on the same loan serialize instead of last-write-wins.
	// The loan passed to fn excludes soft-deleted records.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
