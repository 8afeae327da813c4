// file: internals/features/finance/payments/service/payment_applier_test.go
package service

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"feeportal_backend/internals/datastore"
	feemodel "feeportal_backend/internals/features/finance/fees/model"
)

func testStore() *datastore.Store {
	paidAt := time.Date(2025, time.January, 10, 10, 0, 0, 0, time.UTC)
	receipt := "REC_seed"
	return datastore.New(datastore.Seed{
		StudentID: "STU-1001",
		Semesters: []*feemodel.Semester{{ID: "sem5", Title: "Semester 5", Number: 5}},
		Fees: []*feemodel.FeeRecord{
			{ID: "A", SemesterID: "sem5", Amount: 6000, Currency: "INR", Status: feemodel.FeeStatusPaid, PaidAt: &paidAt, ReceiptID: &receipt},
			{ID: "B", SemesterID: "sem5", Amount: 2000, Currency: "INR", Status: feemodel.FeeStatusUnpaid},
			{ID: "C", SemesterID: "sem5", Amount: 2000, Currency: "INR", Status: feemodel.FeeStatusUnpaid},
		},
	})
}

func TestApplySemesterIsIdempotent(t *testing.T) {
	store := testStore()
	a := NewApplier(store, nil)

	first, err := a.Apply(ApplyRequest{SemesterID: "sem5"})
	if err != nil {
		t.Fatal(err)
	}
	if len(first.FeeIDsUpdated) != 2 {
		t.Fatalf("first call updated %v, want B and C", first.FeeIDsUpdated)
	}
	got := map[string]bool{}
	for _, id := range first.FeeIDsUpdated {
		got[id] = true
	}
	if !got["B"] || !got["C"] || got["A"] {
		t.Errorf("first call updated %v, want exactly {B, C}", first.FeeIDsUpdated)
	}
	if len(first.ReceiptIDs) != 2 {
		t.Errorf("receipts = %v, want one per updated fee", first.ReceiptIDs)
	}

	receiptB := *store.FeeByID("B").ReceiptID

	second, err := a.Apply(ApplyRequest{SemesterID: "sem5"})
	if err != nil {
		t.Fatal(err)
	}
	if len(second.FeeIDsUpdated) != 0 {
		t.Errorf("second call updated %v, want none", second.FeeIDsUpdated)
	}
	if len(second.ReceiptIDs) != 0 {
		t.Errorf("second call issued receipts %v, want none", second.ReceiptIDs)
	}
	if *store.FeeByID("B").ReceiptID != receiptB {
		t.Error("receipt for B changed on re-application")
	}
}

func TestApplySetsPaidInvariant(t *testing.T) {
	store := testStore()
	a := NewApplier(store, nil)

	if _, err := a.Apply(ApplyRequest{FeeID: "B"}); err != nil {
		t.Fatal(err)
	}

	f := store.FeeByID("B")
	if f.Status != feemodel.FeeStatusPaid {
		t.Errorf("status = %q, want PAID", f.Status)
	}
	if f.PaidAt == nil || f.ReceiptID == nil {
		t.Error("PAID fee must carry both paidAt and receiptId")
	}
}

func TestApplyAlreadyPaidFeeIsNoOp(t *testing.T) {
	a := NewApplier(testStore(), nil)

	res, err := a.Apply(ApplyRequest{FeeID: "A"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.FeeIDsUpdated) != 0 {
		t.Errorf("updated %v, want none", res.FeeIDsUpdated)
	}
	if res.Status != "SUCCESS" {
		t.Errorf("status = %q, want SUCCESS", res.Status)
	}
}

func TestApplySettledSemesterIsNoOp(t *testing.T) {
	store := testStore()
	a := NewApplier(store, nil)

	if _, err := a.Apply(ApplyRequest{SemesterID: "sem5"}); err != nil {
		t.Fatal(err)
	}
	res, err := a.Apply(ApplyRequest{SemesterID: "sem5"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.FeeIDsUpdated) != 0 {
		t.Errorf("settled semester updated %v, want none", res.FeeIDsUpdated)
	}
}

func TestApplyGatewayFailureLeavesStateUntouched(t *testing.T) {
	store := testStore()
	a := NewApplier(store, func() bool { return true })

	_, err := a.Apply(ApplyRequest{SemesterID: "sem5"})
	if !errors.Is(err, ErrGateway) {
		t.Fatalf("err = %v, want ErrGateway", err)
	}
	if store.FeeByID("B").Status != feemodel.FeeStatusUnpaid {
		t.Error("B mutated despite gateway failure")
	}
	if store.FeeByID("C").Status != feemodel.FeeStatusUnpaid {
		t.Error("C mutated despite gateway failure")
	}

	// Retry with a healthy gateway succeeds on the same request.
	a.Fail = NeverFail
	res, err := a.Apply(ApplyRequest{SemesterID: "sem5"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.FeeIDsUpdated) != 2 {
		t.Errorf("retry updated %v, want B and C", res.FeeIDsUpdated)
	}
}

func TestApplyFeeIDsResolution(t *testing.T) {
	store := testStore()
	a := NewApplier(store, nil)

	res, err := a.Apply(ApplyRequest{FeeIDs: []string{"B", "A", "missing"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.FeeIDsUpdated) != 1 || res.FeeIDsUpdated[0] != "B" {
		t.Errorf("updated %v, want just B (A paid, missing unknown)", res.FeeIDsUpdated)
	}
}

func TestReceipt(t *testing.T) {
	store := testStore()
	a := NewApplier(store, nil)

	if _, err := a.Receipt("B"); !errors.Is(err, ErrReceiptNotFound) {
		t.Errorf("unpaid fee: err = %v, want ErrReceiptNotFound", err)
	}
	if _, err := a.Receipt("missing"); !errors.Is(err, ErrReceiptNotFound) {
		t.Errorf("unknown fee: err = %v, want ErrReceiptNotFound", err)
	}

	pdf, err := a.Receipt("A")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("receipt does not look like a PDF: %q...", pdf[:8])
	}
}
