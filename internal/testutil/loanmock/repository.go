package loanmock

import (
	"context"

	domain "corporate-loan-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository.
// Fill in the function fields a test needs; unfilled lookups miss.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	AppendActionFn         func(ctx context.Context, e *domain.AuditEntry) error
	ListNotDeletedFn       func(ctx context.Context, pr domain.PageRequest) (*domain.Page, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) AppendAction(ctx context.Context, e *domain.AuditEntry) error {
	if m.AppendActionFn != nil {
		return m.AppendActionFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListNotDeleted(ctx context.Context, pr domain.PageRequest) (*domain.Page, error) {
	if m.ListNotDeletedFn != nil {
		return m.ListNotDeletedFn(ctx, pr)
	}
	return &domain.Page{Page: pr.Page, Size: pr.Size}, nil
}
