package loan

import (
	"context"
	"errors"
	"time"

	domain "corporate-loan-backend/internal/domain/loan"
	"corporate-loan-backend/internal/domain/uow"
	"corporate-loan-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase orchestrates the lifecycle methods against persistence. Every
// mutating call on an existing loan runs inside WithinLoanTx, which
// locks the row for the duration of the read-modify-write.
type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the timestamp source; tests use it to pin time.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

func (u *Usecase) Create(ctx context.Context, in LoanInput, actor string) (*LoanDTO, error) {
	l := domain.New(id.NewID32(), in.fields(), actor, u.now())
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, asNotFound(err)
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context, pr domain.PageRequest) (*PageDTO, error) {
	page, err := u.repo.ListNotDeleted(ctx, pr)
	if err != nil {
		return nil, err
	}
	out := &PageDTO{
		Items:      make([]LoanDTO, 0, len(page.Items)),
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
	for i := range page.Items {
		out.Items = append(out.Items, *toDTO(&page.Items[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, loanID string, in LoanInput, actor string) (*LoanDTO, error) {
	return u.mutate(ctx, loanID, func(l *domain.Loan) error {
		return l.Edit(in.fields(), actor, u.now())
	})
}

func (u *Usecase) Submit(ctx context.Context, loanID, actor string) (*LoanDTO, error) {
	return u.mutate(ctx, loanID, func(l *domain.Loan) error {
		l.Submit(actor, u.now())
		return nil
	})
}

func (u *Usecase) Decide(ctx context.Context, loanID, actor string, in DecideInput) (*LoanDTO, error) {
	return u.mutate(ctx, loanID, func(l *domain.Loan) error {
		l.Decide(actor, in.Approved, in.Amount, in.Rate, u.now())
		return nil
	})
}

func (u *Usecase) SoftDelete(ctx context.Context, loanID, actor string) error {
	_, err := u.mutate(ctx, loanID, func(l *domain.Loan) error {
		l.SoftDelete(actor, u.now())
		return nil
	})
	return err
}

// mutate runs a lifecycle function against the locked loan and persists
// the field changes plus the single new ledger row. Either both writes
// commit or the transaction rolls back whole.
func (u *Usecase) mutate(ctx context.Context, loanID string, op func(l *domain.Loan) error) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if err := op(l); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		tail := l.LastAction()
		tail.LoanRef = l.ID
		if err := r.Loans.AppendAction(ctx, tail); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, asNotFound(err)
	}
	return dto, nil
}

// asNotFound translates the driver-level miss into the domain error;
// anything else passes through untouched.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
