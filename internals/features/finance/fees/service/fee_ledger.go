// file: internals/features/finance/fees/service/fee_ledger.go
package service

import (
	"github.com/shopspring/decimal"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/finance/fees/model"
)

/* =======================================================================
   Ledger
======================================================================= */
/* Ledger reads fee state and derives semester summaries. Summaries are
   never stored; they are recomputed from the fee records on every read
   so they can never drift from the records that own them. */

type Ledger struct {
	Store *datastore.Store
}

func NewLedger(store *datastore.Store) *Ledger {
	return &Ledger{Store: store}
}

// Snapshot is the full fee state handed to the dashboard: recomputed
// summaries plus the raw records.
type Snapshot struct {
	StudentID       string                  `json:"studentId"`
	CurrentSemester int                     `json:"currentSemester"`
	Semesters       []model.SemesterSummary `json:"semesters"`
	Fees            []model.FeeRecord       `json:"fees"`
}

func (l *Ledger) Snapshot() Snapshot {
	l.Store.Lock()
	defer l.Store.Unlock()

	summaries := make([]model.SemesterSummary, 0, len(l.Store.Semesters))
	for _, sem := range l.Store.Semesters {
		summaries = append(summaries, Summarize(sem, l.Store.Fees))
	}

	fees := make([]model.FeeRecord, 0, len(l.Store.Fees))
	for _, f := range l.Store.Fees {
		fees = append(fees, *f)
	}

	return Snapshot{
		StudentID:       l.Store.StudentID,
		CurrentSemester: l.Store.CurrentSemester,
		Semesters:       summaries,
		Fees:            fees,
	}
}

// Summarize aggregates the fee records owned by sem. Totals are summed
// through decimals so repeated recomputation stays exact.
func Summarize(sem *model.Semester, fees []*model.FeeRecord) model.SemesterSummary {
	total := decimal.Zero
	paid := decimal.Zero
	for _, f := range fees {
		if f.SemesterID != sem.ID {
			continue
		}
		amount := decimal.NewFromInt(f.Amount)
		total = total.Add(amount)
		if f.Status == model.FeeStatusPaid {
			paid = paid.Add(amount)
		}
	}

	status := model.FeeStatusUnpaid
	switch {
	case paid.Equal(total):
		status = model.FeeStatusPaid
	case paid.IsPositive():
		status = model.FeeStatusPartial
	}

	return model.SemesterSummary{
		ID:              sem.ID,
		Title:           sem.Title,
		SemesterNumber:  sem.Number,
		TotalAmount:     total.IntPart(),
		TotalPaidAmount: paid.IntPart(),
		Status:          status,
	}
}
