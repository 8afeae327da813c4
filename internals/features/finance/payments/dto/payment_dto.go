// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"errors"

	"feeportal_backend/internals/features/finance/payments/service"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// PayRequest targets one of feeId | feeIds | semesterId. Method is the
// payment instrument chosen in the wizard; it does not change the
// applied state, only the record of how it was paid.
type PayRequest struct {
	FeeID      string   `json:"feeId"`
	FeeIDs     []string `json:"feeIds"`
	SemesterID string   `json:"semesterId"`
	Method     string   `json:"method" validate:"omitempty,oneof=CARD UPI NETBANK WALLET CHALLAN"`
}

// Validate enforces that at least one payment target is present.
func (r *PayRequest) Validate() error {
	if r.FeeID == "" && len(r.FeeIDs) == 0 && r.SemesterID == "" {
		return errors.New("one of feeId, feeIds or semesterId is required")
	}
	return nil
}

func (r *PayRequest) ToRequest() service.ApplyRequest {
	return service.ApplyRequest{
		FeeID:      r.FeeID,
		FeeIDs:     r.FeeIDs,
		SemesterID: r.SemesterID,
		Method:     r.Method,
	}
}
