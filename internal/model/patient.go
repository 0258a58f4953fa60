package model

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID uuid.UUID `db:"id" json:"id"`
	// Seq is the store-assigned insertion counter; listings key recency
	// off it because UUID ids carry no order.
	Seq       int64     `db:"seq" json:"-"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Address   string    `db:"address" json:"address"`
	Age       int       `db:"age" json:"age"`
	Gender    string    `db:"gender" json:"gender"`
	Diagnosis string    `db:"diagnosis" json:"diagnosis"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PatientDetail is a patient together with everything it owns, as served
// by the detail endpoint.
type PatientDetail struct {
	Patient
	Appointments []*Appointment `json:"appointments"`
	Bills        []*Bill        `json:"bills"`
}

// CreatePatientRequest carries the patient form fields. Age arrives as text
// and is parsed leniently: missing or unparseable values fall back to 0.
type CreatePatientRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Age       string `json:"age"`
	Gender    string `json:"gender"`
	Diagnosis string `json:"diagnosis"`
}

// UpdatePatientRequest overwrites every mutable field; there are no
// partial-update semantics, an omitted field is written back as its
// zero value.
type UpdatePatientRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Age       string `json:"age"`
	Gender    string `json:"gender"`
	Diagnosis string `json:"diagnosis"`
}
