package loan

import (
	"errors"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func draftFields() DraftFields {
	return DraftFields{
		ClientName:           "Acme",
		LoanType:             TypeTermLoan,
		RequestedAmount:      1_000_000,
		TenureMonths:         36,
		ProposedInterestRate: 8.25,
	}
}

func TestNew_DraftWithCreatedEntry(t *testing.T) {
	l := New("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", draftFields(), "user@x", t0)

	if l.Status != StatusDraft {
		t.Fatalf("status = %s, want DRAFT", l.Status)
	}
	if l.CreatedBy != "user@x" || !l.CreatedAt.Equal(t0) {
		t.Fatalf("created_by=%s created_at=%v", l.CreatedBy, l.CreatedAt)
	}
	if len(l.Actions) != 1 {
		t.Fatalf("actions = %d, want 1", len(l.Actions))
	}
	a := l.Actions[0]
	if a.By != "user@x" || a.Action != ActionCreated || !a.Timestamp.Equal(t0) {
		t.Fatalf("unexpected opening entry: %+v", a)
	}
	if l.SanctionedAmount != nil || l.ApprovedInterestRate != nil || l.ApprovedBy != nil || l.ApprovedAt != nil {
		t.Fatalf("admin fields must start null")
	}
}

func TestEdit_OverwritesEditableFieldsOnly(t *testing.T) {
	l := New("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", draftFields(), "user@x", t0)

	next := DraftFields{
		ClientName:      "Acme Corp",
		LoanType:        TypeOverdraft,
		RequestedAmount: 750_000,
		TenureMonths:    12, // not draft-editable
		Financials:      &Financials{Revenue: 9_000_000, EBITDA: 1_200_000, Rating: "BBB"},
	}
	if err := l.Edit(next, "user@x", t0.Add(time.Hour)); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	if l.ClientName != "Acme Corp" || l.LoanType != TypeOverdraft || l.RequestedAmount != 750_000 {
		t.Fatalf("editable fields not applied: %+v", l)
	}
	if l.Financials == nil || l.Financials.Rating != "BBB" {
		t.Fatalf("financials not applied: %+v", l.Financials)
	}
	if l.TenureMonths != 36 {
		t.Fatalf("tenure changed by edit: %d", l.TenureMonths)
	}
	if l.Status != StatusDraft {
		t.Fatalf("status changed by edit: %s", l.Status)
	}
	if got := l.Actions[len(l.Actions)-1]; got.Action != ActionUpdated || got.By != "user@x" {
		t.Fatalf("tail entry: %+v", got)
	}
}

func TestEdit_RejectsNonDraft(t *testing.T) {
	l := New("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", draftFields(), "user@x", t0)
	l.Submit("user@x", t0)

	before := len(l.Actions)
	err := l.Edit(draftFields(), "user@x", t0.Add(time.Hour))
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
	if len(l.Actions) != before {
		t.Fatalf("failed edit must not append to the ledger")
	}
	if l.ClientName != "Acme" {
		t.Fatalf("failed edit mutated fields")
	}
}

func TestSubmit_SetsStatusAndAppends(t *testing.T) {
	l := New("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", draftFields(), "user@x", t0)
	l.Submit("user@x", t0.Add(time.Minute))

	if l.Status != StatusSubmitted {
		t.Fatalf("status = %s", l.Status)
	}
	tail := l.Actions[len(l.Actions)-1]
	if tail.Action != ActionSubmitted || tail.By != "user@x" {
		t.Fatalf("tail = %+v", tail)
	}
}

// No precondition on submit: re-submitting an already decided loan is
// accepted, matching the published contract.
func TestSubmit_AllowedFromAnyStatus(t *testing.T) {
	l := New("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", draftFields(), "user@x", t0)
	l.Decide("admin@x", false, 0, 0, t0)
	l.Submit("user@x", t0.Add(time.Hour))

	if l.Status != StatusSubmitted {
		t.Fatalf("status = %s, want SUBMITTED", l.Status)
	}
}

func TestDecide_Approve(t *testing.T) {
	l := New("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", draftFields(), "user@x", t0)
	l.Submit("user@x", t0)

	when := t0.Add(2 * time.Hour)
	l.Decide("admin@x", true, 1_000_000, 7.5, when)

	if l.Status != StatusApproved {
		t.Fatalf("status = %s", l.Status)
	}
	if l.SanctionedAmount == nil || *l.SanctionedAmount != 1_000_000 {
		t.Fatalf("sanctioned = %v", l.SanctionedAmount)
	}
	if l.ApprovedInterestRate == nil || *l.ApprovedInterestRate != 7.5 {
		t.Fatalf("rate = %v", l.ApprovedInterestRate)
	}
	if l.ApprovedBy == nil || *l.ApprovedBy != "admin@x" {
		t.Fatalf("approved_by = %v", l.ApprovedBy)
	}
	if l.ApprovedAt == nil || !l.ApprovedAt.Equal(when) {
		t.Fatalf("approved_at = %v", l.ApprovedAt)
	}
	if tail := l.Actions[len(l.Actions)-1]; tail.Action != ActionApproved {
		t.Fatalf("tail = %+v", tail)
	}
}

func TestDecide_RejectLeavesAmountsNull(t *testing.T) {
	l := New("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", draftFields(), "user@x", t0)
	l.Submit("user@x", t0)
	l.Decide("admin@x", false, 0, 0, t0.Add(time.Hour))

	if l.Status != StatusRejected {
		t.Fatalf("status = %s", l.Status)
	}
	if l.SanctionedAmount != nil || l.ApprovedInterestRate != nil {
		t.Fatalf("rejected loan must keep amounts null")
	}
	if l.ApprovedBy == nil || *l.ApprovedBy != "admin@x" || l.ApprovedAt == nil {
		t.Fatalf("rejection must still record the decider")
	}
	if tail := l.Actions[len(l.Actions)-1]; tail.Action != ActionRejected {
		t.Fatalf("tail = %+v", tail)
	}
}

// Re-deciding an approved loan as rejected clears the sanctioned
// amount and rate again; amounts are only ever set while APPROVED.
func TestDecide_RejectAfterApproveClearsAmounts(t *testing.T) {
	l := New("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", draftFields(), "user@x", t0)
	l.Decide("admin@x", true, 500_000, 6.9, t0)
	l.Decide("admin@x", false, 0, 0, t0.Add(time.Hour))

	if l.Status != StatusRejected || l.SanctionedAmount != nil || l.ApprovedInterestRate != nil {
		t.Fatalf("invariant broken: status=%s sanctioned=%v rate=%v",
			l.Status, l.SanctionedAmount, l.ApprovedInterestRate)
	}
}

func TestSoftDelete_KeepsStatus(t *testing.T) {
	l := New("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", draftFields(), "user@x", t0)
	l.Submit("user@x", t0)
	l.SoftDelete("admin@x", t0.Add(time.Hour))

	if !l.Deleted {
		t.Fatal("deleted flag not set")
	}
	if l.Status != StatusSubmitted {
		t.Fatalf("soft delete changed status: %s", l.Status)
	}
	tail := l.Actions[len(l.Actions)-1]
	if tail.Action != ActionDeleted || tail.By != "admin@x" {
		t.Fatalf("tail = %+v", tail)
	}
}

// The ledger prefix present before an operation stays an exact prefix
// after it, for any operation sequence.
func TestLedger_AppendOnlyAcrossSequence(t *testing.T) {
	l := New("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", draftFields(), "user@x", t0)

	ops := []func(){
		func() { _ = l.Edit(draftFields(), "user@x", t0.Add(1*time.Minute)) },
		func() { l.Submit("user@x", t0.Add(2*time.Minute)) },
		func() { l.Decide("admin@x", true, 1_000_000, 7.5, t0.Add(3*time.Minute)) },
		func() { l.SoftDelete("admin@x", t0.Add(4*time.Minute)) },
	}
	want := []Action{ActionCreated, ActionUpdated, ActionSubmitted, ActionApproved, ActionDeleted}

	for _, op := range ops {
		prefix := make([]AuditEntry, len(l.Actions))
		copy(prefix, l.Actions)

		op()

		if len(l.Actions) < len(prefix) {
			t.Fatalf("ledger shrank: %d -> %d", len(prefix), len(l.Actions))
		}
		for i := range prefix {
			if l.Actions[i] != prefix[i] {
				t.Fatalf("ledger entry %d changed: %+v -> %+v", i, prefix[i], l.Actions[i])
			}
		}
	}

	if len(l.Actions) != len(want) {
		t.Fatalf("ledger length = %d, want %d", len(l.Actions), len(want))
	}
	for i, a := range want {
		if l.Actions[i].Action != a {
			t.Fatalf("action[%d] = %s, want %s", i, l.Actions[i].Action, a)
		}
	}
}
