package loan

import "context"

type PageRequest struct {
	Page int
	Size int
}

type Page struct {
	Items      []Loan
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
}

type Repository interface {
	// Create inserts the loan together with its opening ledger entry.
	Create(ctx context.Context, l *Loan) error
	// GetByLoanID loads a visible (not soft-deleted) loan with its
	// ledger in append order.
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate is GetByLoanID plus a row lock; only valid
	// inside a transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// Save writes the loan columns only; ledger rows go through
	// AppendAction so existing entries are never rewritten.
	Save(ctx context.Context, l *Loan) error
	AppendAction(ctx context.Context, e *AuditEntry) error
	ListNotDeleted(ctx context.Context, pr PageRequest) (*Page, error)
}
