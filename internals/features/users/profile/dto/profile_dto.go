// file: internals/features/users/profile/dto/profile_dto.go
package dto

import (
	"feeportal_backend/internals/features/users/profile/model"
	"feeportal_backend/internals/features/users/profile/service"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type AddressInput struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type EmergencyContactInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfileRequest is the partial update for non-sensitive fields.
// Sensitive fields (email, phone, bank) have no place here; they only
// change through the verification flow.
type UpdateProfileRequest struct {
	FirstName        *string                `json:"firstName"`
	LastName         *string                `json:"lastName"`
	DOB              *string                `json:"dob"`
	Course           *string                `json:"course"`
	Year             *int                   `json:"year" validate:"omitempty,min=1,max=6"`
	Address          *AddressInput          `json:"address"`
	EmergencyContact *EmergencyContactInput `json:"emergencyContact"`
}

func (r *UpdateProfileRequest) ToInput() service.UpdateInput {
	in := service.UpdateInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		DOB:       r.DOB,
		Course:    r.Course,
		Year:      r.Year,
	}
	if r.Address != nil {
		in.Address = &model.Address{
			Line1:   r.Address.Line1,
			Line2:   r.Address.Line2,
			City:    r.Address.City,
			State:   r.Address.State,
			Pincode: r.Address.Pincode,
		}
	}
	if r.EmergencyContact != nil {
		in.EmergencyContact = &model.EmergencyContact{
			Name:  r.EmergencyContact.Name,
			Phone: r.EmergencyContact.Phone,
		}
	}
	return in
}

type VerifySendRequest struct {
	Field    string `json:"field" validate:"required"`
	NewValue string `json:"newValue" validate:"required"`
}

type VerifyConfirmRequest struct {
	VerificationID string `json:"verificationId" validate:"required"`
	OTP            string `json:"otp" validate:"required"`
}
