package loan

import (
	"time"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	// StatusUnderReview is part of the published status enum but no
	// transition currently produces or consumes it.
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
)

type Type string

const (
	TypeTermLoan       Type = "TERM_LOAN"
	TypeWorkingCapital Type = "WORKING_CAPITAL"
	TypeOverdraft      Type = "OVERDRAFT"
)

// Action is the closed set of ledger tags. The lifecycle methods are
// the only writers, so free-form strings never reach the ledger.
type Action string

const (
	ActionCreated   Action = "CREATED"
	ActionUpdated   Action = "UPDATED"
	ActionSubmitted Action = "SUBMITTED"
	ActionApproved  Action = "APPROVED"
	ActionRejected  Action = "REJECTED"
	ActionDeleted   Action = "DELETED"
)

// Financials is the optional client snapshot supplied with a draft.
type Financials struct {
	Revenue float64 `gorm:"column:fin_revenue;type:decimal(18,2)" json:"revenue"`
	EBITDA  float64 `gorm:"column:fin_ebitda;type:decimal(18,2)" json:"ebitda"`
	Rating  string  `gorm:"column:fin_rating;size:16" json:"rating"`
}

// AuditEntry is one row of the append-only ledger attached to a loan.
// Rows are only ever inserted, never updated or removed.
type AuditEntry struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanRef   uint64    `gorm:"column:loan_ref;index;not null" json:"-"`
	By        string    `gorm:"column:actor;size:128;not null" json:"by"`
	Action    Action    `gorm:"column:action;size:16;not null" json:"action"`
	Timestamp time.Time `gorm:"column:ts;not null" json:"timestamp"`
}

func (AuditEntry) TableName() string { return "loan_actions" }

type Loan struct {
	ID                   uint64      `gorm:"primaryKey;column:id" json:"-"`
	LoanID               string      `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"id"`
	ClientName           string      `gorm:"size:255;not null" json:"client_name"`
	LoanType             Type        `gorm:"size:32;not null" json:"loan_type"`
	RequestedAmount      float64     `gorm:"type:decimal(18,2)" json:"requested_amount"`
	TenureMonths         int         `json:"tenure_months"`
	ProposedInterestRate float64     `gorm:"type:decimal(6,4)" json:"proposed_interest_rate"`
	Financials           *Financials `gorm:"embedded" json:"financials,omitempty"`

	Status Status `gorm:"size:16;default:'DRAFT'" json:"status"`

	// Admin-only fields; sanctioned amount and approved rate are set on
	// approval only, approver identity on any decision.
	SanctionedAmount     *float64   `gorm:"type:decimal(18,2)" json:"sanctioned_amount,omitempty"`
	ApprovedInterestRate *float64   `gorm:"type:decimal(6,4)" json:"approved_interest_rate,omitempty"`
	ApprovedBy           *string    `gorm:"size:128" json:"approved_by,omitempty"`
	ApprovedAt           *time.Time `json:"approved_at,omitempty"`

	CreatedBy string    `gorm:"size:128;not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`

	// Soft delete. Deleted rows stay stored with their ledger but are
	// excluded from default lookups and listings.
	Deleted bool `gorm:"not null;default:false" json:"-"`

	Actions []AuditEntry `gorm:"foreignKey:LoanRef;references:ID" json:"actions"`
}

func (Loan) TableName() string { return "loans" }
