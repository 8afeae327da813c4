// file: internals/features/finance/transactions/dto/transaction_dto.go
package dto

import (
	"feeportal_backend/internals/features/finance/transactions/service"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// ExportRequest carries the filters the CSV export honours. Sorting
// defaults to date descending, like the listing.
type ExportRequest struct {
	Status  string `json:"status" validate:"omitempty,oneof=PENDING SUCCESS FAILED"`
	Type    string `json:"type" validate:"omitempty,oneof=EXAM_FEE SEM_FEE OTHER"`
	Q       string `json:"q"`
	From    string `json:"from"`
	To      string `json:"to"`
	SortBy  string `json:"sortBy" validate:"omitempty,oneof=date amount status"`
	SortDir string `json:"sortDir" validate:"omitempty,oneof=asc desc"`
}

func (r *ExportRequest) ToQuery() service.Query {
	return service.Query{
		Status:  r.Status,
		Type:    r.Type,
		Q:       r.Q,
		From:    r.From,
		To:      r.To,
		SortBy:  r.SortBy,
		SortDir: r.SortDir,
	}
}
