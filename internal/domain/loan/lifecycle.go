package loan

import "time"

// The lifecycle methods below compute status transitions and their
// field mutations. They never touch storage or the clock; callers pass
// the actor and timestamp in and persist the result afterwards.

// DraftFields are the caller-supplied loan terms. Edit overwrites only
// the subset of these that stays mutable while the loan is a draft.
type DraftFields struct {
	ClientName           string
	LoanType             Type
	RequestedAmount      float64
	TenureMonths         int
	ProposedInterestRate float64
	Financials           *Financials
}

// New builds a DRAFT loan with its opening CREATED ledger entry.
func New(publicID string, f DraftFields, actor string, now time.Time) *Loan {
	return &Loan{
		LoanID:               publicID,
		ClientName:           f.ClientName,
		LoanType:             f.LoanType,
		RequestedAmount:      f.RequestedAmount,
		TenureMonths:         f.TenureMonths,
		ProposedInterestRate: f.ProposedInterestRate,
		Financials:           f.Financials,
		Status:               StatusDraft,
		CreatedBy:            actor,
		CreatedAt:            now,
		Actions:              []AuditEntry{{By: actor, Action: ActionCreated, Timestamp: now}},
	}
}

// Edit overwrites the draft-editable fields: client name, loan type,
// requested amount and financials. Identity, status, tenure and the
// admin-only fields are never touched here.
func (l *Loan) Edit(f DraftFields, actor string, now time.Time) error {
	if l.Status != StatusDraft {
		return ErrInvalidState
	}
	l.ClientName = f.ClientName
	l.LoanType = f.LoanType
	l.RequestedAmount = f.RequestedAmount
	l.Financials = f.Financials
	l.append(actor, ActionUpdated, now)
	return nil
}

// Submit moves the loan to SUBMITTED. There is no precondition on the
// prior status.
func (l *Loan) Submit(actor string, now time.Time) {
	l.Status = StatusSubmitted
	l.append(actor, ActionSubmitted, now)
}

// Decide records the admin decision. Sanctioned amount and approved
// rate are set on approval and cleared on rejection; the approver
// identity and timestamp are recorded either way. Any visible loan may
// be decided regardless of its current status.
func (l *Loan) Decide(actor string, approved bool, amount, rate float64, now time.Time) {
	if approved {
		l.Status = StatusApproved
		l.SanctionedAmount = &amount
		l.ApprovedInterestRate = &rate
		l.append(actor, ActionApproved, now)
	} else {
		l.Status = StatusRejected
		l.SanctionedAmount = nil
		l.ApprovedInterestRate = nil
		l.append(actor, ActionRejected, now)
	}
	l.ApprovedBy = &actor
	l.ApprovedAt = &now
}

// SoftDelete hides the loan from default lookups. The row and its
// ledger stay stored; status is left unchanged.
func (l *Loan) SoftDelete(actor string, now time.Time) {
	l.Deleted = true
	l.append(actor, ActionDeleted, now)
}

func (l *Loan) append(actor string, a Action, now time.Time) {
	l.Actions = append(l.Actions, AuditEntry{LoanRef: l.ID, By: actor, Action: a, Timestamp: now})
}

// LastAction returns the ledger tail; callers persist it after a
// lifecycle method has run.
func (l *Loan) LastAction() *AuditEntry {
	if len(l.Actions) == 0 {
		return nil
	}
	return &l.Actions[len(l.Actions)-1]
}
