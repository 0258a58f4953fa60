package model

import (
	"time"

	"github.com/google/uuid"
)

type BillStatus string

const (
	BillStatusPending BillStatus = "Pending"
	BillStatusPaid    BillStatus = "Paid"
)

type Bill struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Seq           int64      `db:"seq" json:"-"`
	PatientID     uuid.UUID  `db:"patient_id" json:"patient_id"`
	Amount        float64    `db:"amount" json:"amount"`
	PaymentMethod string     `db:"payment_method" json:"payment_method"`
	Status        BillStatus `db:"status" json:"status"`
	TransactionID string     `db:"transaction_id" json:"transaction_id"`
	Description   string     `db:"description" json:"description"`
	DateIssued    time.Time  `db:"date_issued" json:"date_issued"`
}

// CreateBillRequest carries the billing form fields. Amount arrives as text
// and is parsed leniently: missing or unparseable values fall back to 0.
type CreateBillRequest struct {
	PatientID     string `json:"patient_id" binding:"required"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	Description   string `json:"description"`
}

// PayBillRequest is the payment-simulation payload. A missing method is
// accepted and stored as empty; phone is accepted for interface fidelity
// with the payment form but never stored.
type PayBillRequest struct {
	Method string `json:"method"`
	Phone  string `json:"phone"`
}
