// file: internals/features/finance/transactions/service/transaction_query.go
package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/finance/transactions/model"
	helper "feeportal_backend/internals/helpers"
)

var ErrNotFound = errors.New("transaction not found")

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

/* =======================================================================
   Query service
======================================================================= */
/* Read-only views over the transaction ledger: conjunctive filtering,
   sorting, offset pagination and CSV export of the filtered set. */

type Service struct {
	Store *datastore.Store
}

func NewService(store *datastore.Store) *Service {
	return &Service{Store: store}
}

// Query holds every filter the listing accepts. All supplied
// predicates must match (conjunctive); zero values mean "no filter".
type Query struct {
	Page    int
	Limit   int
	Status  string
	Type    string
	Q       string
	From    string
	To      string
	SortBy  string
	SortDir string
}

type Page struct {
	Total        int                 `json:"total"`
	Page         int                 `json:"page"`
	Limit        int                 `json:"limit"`
	Transactions []model.Transaction `json:"transactions"`
}

func (s *Service) List(q Query) Page {
	s.Store.Lock()
	filtered := s.filter(q)
	s.Store.Unlock()

	sortTransactions(filtered, q.SortBy, q.SortDir)

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Page{
		Total:        total,
		Page:         page,
		Limit:        limit,
		Transactions: filtered[start:end],
	}
}

func (s *Service) Get(id string) (*model.Transaction, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	t := s.Store.TransactionByID(id)
	if t == nil {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

// Receipt renders a PDF receipt for a transaction.
func (s *Service) Receipt(id string) ([]byte, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("Transaction: %s", t.ID),
		fmt.Sprintf("Date: %s", t.Date.Format(time.RFC3339)),
		fmt.Sprintf("Amount: %d %s", t.Amount, t.Currency),
		fmt.Sprintf("Method: %s", t.PaymentMethod),
		fmt.Sprintf("Payer: %s (%s)", t.Payer.Name, t.Payer.RegNo),
		fmt.Sprintf("Status: %s", t.Status),
	}
	if t.ReceiptID != "" {
		lines = append(lines, fmt.Sprintf("Receipt No: %s", t.ReceiptID))
	}
	return helper.ReceiptPDF("Transaction Receipt", lines), nil
}

// ExportCSV renders the filtered, sorted set (no pagination) as CSV.
func (s *Service) ExportCSV(q Query) ([]byte, error) {
	s.Store.Lock()
	filtered := s.filter(q)
	s.Store.Unlock()

	sortTransactions(filtered, q.SortBy, q.SortDir)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"ID", "Date", "Amount", "Currency", "Type", "Method", "Semester", "Status", "ReceiptID"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, t := range filtered {
		row := []string{
			t.ID,
			t.Date.Format(time.RFC3339),
			fmt.Sprintf("%d", t.Amount),
			t.Currency,
			t.Type,
			t.PaymentMethod,
			t.Semester,
			t.Status,
			t.ReceiptID,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* ===================== internals ===================== */

// filter copies matching transactions; caller holds the store lock.
func (s *Service) filter(q Query) []model.Transaction {
	needle := strings.ToLower(strings.TrimSpace(q.Q))
	from, hasFrom := parseDay(q.From)
	to, hasTo := parseDayEnd(q.To)

	out := make([]model.Transaction, 0, len(s.Store.Transactions))
	for _, t := range s.Store.Transactions {
		if q.Status != "" && t.Status != q.Status {
			continue
		}
		if q.Type != "" && t.Type != q.Type {
			continue
		}
		if needle != "" && !matchesNeedle(t, needle) {
			continue
		}
		if hasFrom && t.Date.Before(from) {
			continue
		}
		if hasTo && t.Date.After(to) {
			continue
		}
		out = append(out, *t)
	}
	return out
}

func matchesNeedle(t *model.Transaction, needle string) bool {
	return strings.Contains(strings.ToLower(t.ID), needle) ||
		strings.Contains(strings.ToLower(t.Payer.Name), needle) ||
		strings.Contains(strings.ToLower(t.Payer.RegNo), needle)
}

func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseDayEnd extends a bare date to the end of that day, so
// to=2025-06-12 keeps everything dated on the 12th.
func parseDayEnd(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Add(24*time.Hour - time.Nanosecond), true
	}
	return parseDay(s)
}

func sortTransactions(txs []model.Transaction, sortBy, sortDir string) {
	asc := strings.EqualFold(sortDir, "asc")

	less := func(a, b model.Transaction) bool { return a.Date.Before(b.Date) }
	switch sortBy {
	case "amount":
		less = func(a, b model.Transaction) bool { return a.Amount < b.Amount }
	case "status":
		less = func(a, b model.Transaction) bool { return a.Status < b.Status }
	}

	sort.SliceStable(txs, func(i, j int) bool {
		if asc {
			return less(txs[i], txs[j])
		}
		return less(txs[j], txs[i])
	})
}
