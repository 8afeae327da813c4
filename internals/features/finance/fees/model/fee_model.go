// file: internals/features/finance/fees/model/fee_model.go
package model

import "time"

/* ===================== Enums (string) ===================== */

const (
	FeeTypeTuition  = "TUITION"
	FeeTypeExam     = "EXAM"
	FeeTypeBus      = "BUS"
	FeeTypeSuraksha = "SURAKSHA"
	FeeTypeOther    = "OTHER"
)

const (
	FeeStatusPaid    = "PAID"
	FeeStatusUnpaid  = "UNPAID"
	FeeStatusPartial = "PARTIAL"
)

/* ===================== Model ===================== */

// FeeRecord is a single payable obligation tied to a semester.
// Amounts are whole currency units (no minor units), so integer
// arithmetic on them is always exact.
//
// Invariant: Status == PAID  <=>  PaidAt and ReceiptID both set.
type FeeRecord struct {
	ID          string     `json:"id"`
	SemesterID  string     `json:"semesterId"`
	Code        string     `json:"code"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	DueDate     string     `json:"dueDate"`
	Amount      int64      `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	ReceiptID   *string    `json:"receiptId,omitempty"`
}

// Semester is the static part of a semester; payment totals live in
// SemesterSummary and are recomputed from the fee records on every read.
type Semester struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Number int    `json:"semesterNumber"`
}

// SemesterSummary is a pure projection of a semester's fee records.
// It is never stored or mutated independently.
type SemesterSummary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	SemesterNumber  int    `json:"semesterNumber"`
	TotalAmount     int64  `json:"totalAmount"`
	TotalPaidAmount int64  `json:"totalPaidAmount"`
	Status          string `json:"status"`
}
