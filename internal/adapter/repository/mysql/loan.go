package mysql

import (
	"context"
	"math"

	loanDomain "corporate-loan-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	// inserts the loan and its opening ledger entry in one go
	return r.db.WithContext(ctx).Create(l).Error
}

// Save persists loan columns only. Ledger rows are insert-only and go
// through AppendAction, so stored entries can never be rewritten.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Omit("Actions").Save(l).Error
}

func (r *LoanRepository) AppendAction(ctx context.Context, e *loanDomain.AuditEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Preload("Actions", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("loan_id = ? AND deleted = ?", loanID, false).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no row locks; its writes serialize on the
	// database lock instead.
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loanDomain.Loan
	res := q.
		Where("loan_id = ? AND deleted = ?", loanID, false).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	// ledger loaded separately so the lock stays on the loans row
	err := r.db.WithContext(ctx).
		Where("loan_ref = ?", out.ID).
		Order("id ASC").
		Find(&out.Actions).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LoanRepository) ListNotDeleted(ctx context.Context, pr loanDomain.PageRequest) (*loanDomain.Page, error) {
	if pr.Page < 0 {
		pr.Page = 0
	}
	if pr.Size <= 0 {
		pr.Size = 20
	}

	var total int64
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("deleted = ?", false).
		Count(&total).Error
	if err != nil {
		return nil, err
	}

	var items []loanDomain.Loan
	err = r.db.WithContext(ctx).
		Preload("Actions", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("deleted = ?", false).
		Order("created_at DESC, id DESC").
		Offset(pr.Page * pr.Size).
		Limit(pr.Size).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &loanDomain.Page{
		Items:      items,
		Page:       pr.Page,
		Size:       pr.Size,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(pr.Size))),
	}, nil
}
