// file: internals/features/finance/payments/service/payment_applier.go
package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/segmentio/ksuid"

	"feeportal_backend/internals/datastore"
	feemodel "feeportal_backend/internals/features/finance/fees/model"
	helper "feeportal_backend/internals/helpers"
)

var (
	// ErrGateway is the simulated transient gateway failure. The call
	// mutates nothing when it fires; the client retries the same
	// request and already-paid fees are skipped, so retrying is safe.
	ErrGateway = errors.New("payment gateway error")

	ErrReceiptNotFound = errors.New("receipt not found")
)

// FailurePolicy decides whether an Apply call fails before any state
// is touched. Injected so tests can force both outcomes.
type FailurePolicy func() bool

// RandomFailure fails at the given rate (0 disables it).
func RandomFailure(rate float64) FailurePolicy {
	return func() bool { return rate > 0 && rand.Float64() < rate }
}

// NeverFail is the policy used by tests and offline tooling.
func NeverFail() bool { return false }

/* =======================================================================
   Applier
======================================================================= */
/* Applier is the only writer of fee state. It moves records to PAID,
   stamps paidAt and a fresh receipt token, and does so all-or-nothing
   per call: the failure policy is consulted before the first mutation. */

type Applier struct {
	Store *datastore.Store
	Fail  FailurePolicy
	Now   func() time.Time
}

func NewApplier(store *datastore.Store, fail FailurePolicy) *Applier {
	if fail == nil {
		fail = NeverFail
	}
	return &Applier{Store: store, Fail: fail, Now: time.Now}
}

// ApplyRequest targets exactly one of: a whole semester, an explicit
// fee list, or a single fee. Resolution order: semesterId, feeIds,
// feeId.
type ApplyRequest struct {
	FeeID      string
	FeeIDs     []string
	SemesterID string
	Method     string
}

type ApplyResult struct {
	PaymentID     string            `json:"paymentId"`
	FeeIDsUpdated []string          `json:"feeIdsUpdated"`
	Status        string            `json:"status"`
	ReceiptIDs    map[string]string `json:"receiptIds"`
}

// Apply marks every resolved, not-yet-paid fee as PAID. Already-paid
// fees are silently skipped, which makes re-applying the same request
// a no-op rather than a double charge. Unknown fee ids are ignored.
// An empty resolved set is a successful no-op.
func (a *Applier) Apply(req ApplyRequest) (*ApplyResult, error) {
	if a.Fail() {
		return nil, ErrGateway
	}

	a.Store.Lock()
	defer a.Store.Unlock()

	var targets []*feemodel.FeeRecord
	switch {
	case req.SemesterID != "":
		for _, f := range a.Store.Fees {
			if f.SemesterID == req.SemesterID && f.Status != feemodel.FeeStatusPaid {
				targets = append(targets, f)
			}
		}
	case len(req.FeeIDs) > 0:
		for _, id := range req.FeeIDs {
			if f := a.Store.FeeByID(id); f != nil {
				targets = append(targets, f)
			}
		}
	case req.FeeID != "":
		if f := a.Store.FeeByID(req.FeeID); f != nil {
			targets = append(targets, f)
		}
	}

	now := a.Now()
	updated := make([]string, 0, len(targets))
	receipts := make(map[string]string, len(targets))
	for _, f := range targets {
		if f.Status == feemodel.FeeStatusPaid {
			continue
		}
		receipt := "REC_" + ksuid.New().String()
		paidAt := now
		f.Status = feemodel.FeeStatusPaid
		f.PaidAt = &paidAt
		f.ReceiptID = &receipt
		updated = append(updated, f.ID)
		receipts[f.ID] = receipt
	}

	return &ApplyResult{
		PaymentID:     "PAY_" + ksuid.New().String(),
		FeeIDsUpdated: updated,
		Status:        "SUCCESS",
		ReceiptIDs:    receipts,
	}, nil
}

// Receipt renders the PDF receipt for a paid fee. Fees that were never
// paid have no receipt.
func (a *Applier) Receipt(feeID string) ([]byte, error) {
	a.Store.Lock()
	defer a.Store.Unlock()

	f := a.Store.FeeByID(feeID)
	if f == nil || f.ReceiptID == nil || f.PaidAt == nil {
		return nil, ErrReceiptNotFound
	}

	lines := []string{
		fmt.Sprintf("Receipt No: %s", *f.ReceiptID),
		fmt.Sprintf("Student: %s", a.Store.StudentID),
		fmt.Sprintf("Fee: %s (%s)", f.Description, f.Code),
		fmt.Sprintf("Amount: %d %s", f.Amount, f.Currency),
		fmt.Sprintf("Paid At: %s", f.PaidAt.Format(time.RFC3339)),
	}
	return helper.ReceiptPDF("Fee Payment Receipt", lines), nil
}
