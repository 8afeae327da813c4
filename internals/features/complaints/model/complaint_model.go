// file: internals/features/complaints/model/complaint_model.go
package model

import "time"

/* ===================== Enums (string) ===================== */

const (
	ComplaintStatusOpen       = "OPEN"
	ComplaintStatusInProgress = "IN_PROGRESS"
	ComplaintStatusResolved   = "RESOLVED"
	// Only produced by an administrative action outside the escalation path.
	ComplaintStatusClosed = "CLOSED"
)

/* ===================== Model ===================== */

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type TimelineEntry struct {
	StageID   string    `json:"stageId"`
	StageName string    `json:"stageName"`
	Actor     string    `json:"actor"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Complaint struct {
	ID               string          `json:"id"`
	StudentID        string          `json:"studentId"`
	RelatedPaymentID string          `json:"relatedPaymentId,omitempty"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Confidential     bool            `json:"confidential"`
	Attachments      []Attachment    `json:"attachments"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	CurrentStage     string          `json:"currentStage"`
	Timeline         []TimelineEntry `json:"timeline"`
	Status           string          `json:"status"`
}

// AtTerminalStage reports whether the complaint has reached the last stage
// of the escalation chain.
func (c *Complaint) AtTerminalStage() bool {
	return c.CurrentStage == StageResolved
}
