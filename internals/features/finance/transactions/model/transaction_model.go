// file: internals/features/finance/transactions/model/transaction_model.go
package model

import "time"

/* ===================== Enums (string) ===================== */

const (
	TxTypeExamFee = "EXAM_FEE"
	TxTypeSemFee  = "SEM_FEE"
	TxTypeOther   = "OTHER"
)

const (
	TxMethodCard    = "CARD"
	TxMethodUPI     = "UPI"
	TxMethodNetbank = "NETBANK"
	TxMethodWallet  = "WALLET"
	TxMethodChallan = "CHALLAN"
)

const (
	TxStatusPending = "PENDING"
	TxStatusSuccess = "SUCCESS"
	TxStatusFailed  = "FAILED"
)

/* ===================== Model ===================== */

type Payer struct {
	Name      string `json:"name"`
	RegNo     string `json:"regNo"`
	StudentID string `json:"studentId"`
}

type GatewayResponse struct {
	TransactionID string `json:"transactionId"`
	ResponseCode  string `json:"responseCode"`
	Message       string `json:"message"`
}

type TimelineEntry struct {
	Event     string    `json:"event"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

type Transaction struct {
	ID              string           `json:"id"`
	Date            time.Time        `json:"date"`
	Amount          int64            `json:"amount"`
	Currency        string           `json:"currency"`
	Type            string           `json:"type"`
	PaymentMethod   string           `json:"paymentMethod"`
	Semester        string           `json:"semester,omitempty"`
	Payer           Payer            `json:"payer"`
	Status          string           `json:"status"`
	ReceiptID       string           `json:"receiptId,omitempty"`
	GatewayResponse *GatewayResponse `json:"gatewayResponse,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	Timeline        []TimelineEntry  `json:"timeline,omitempty"`
}
