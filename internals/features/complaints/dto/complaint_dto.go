// file: internals/features/complaints/dto/complaint_dto.go
package dto

import (
	"feeportal_backend/internals/features/complaints/model"
	"feeportal_backend/internals/features/complaints/service"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type AttachmentInput struct {
	Name string `json:"name" validate:"required"`
	Size int64  `json:"size" validate:"omitempty,min=0"`
	URL  string `json:"url"`
}

type CreateComplaintRequest struct {
	StudentID        string            `json:"studentId"`
	Title            string            `json:"title" validate:"required"`
	Description      string            `json:"description" validate:"required"`
	Confidential     bool              `json:"confidential"`
	RelatedPaymentID string            `json:"relatedPaymentId"`
	Attachments      []AttachmentInput `json:"attachments" validate:"omitempty,dive"`
}

func (r *CreateComplaintRequest) ToInput() service.CreateInput {
	attachments := make([]model.Attachment, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		attachments = append(attachments, model.Attachment{
			Name: a.Name,
			Size: a.Size,
			URL:  a.URL,
		})
	}
	return service.CreateInput{
		StudentID:        r.StudentID,
		Title:            r.Title,
		Description:      r.Description,
		Confidential:     r.Confidential,
		RelatedPaymentID: r.RelatedPaymentID,
		Attachments:      attachments,
	}
}

type CommentRequest struct {
	Actor string `json:"actor"`
	Note  string `json:"note" validate:"required"`
}
