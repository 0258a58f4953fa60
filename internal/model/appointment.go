package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatusUpcoming is the status every new appointment starts in.
// The field itself is free text; other values are reachable only by edit.
const AppointmentStatusUpcoming = "Upcoming"

type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Seq       int64     `db:"seq" json:"-"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Doctor    string    `db:"doctor" json:"doctor"`
	Date      string    `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	Reason    string    `db:"reason" json:"reason"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateAppointmentRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	Doctor    string `json:"doctor"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
}
