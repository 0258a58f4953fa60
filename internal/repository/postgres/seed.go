package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/pkg/payment"
)

// Seed inserts demo data on a fresh database: two patients, one appointment
// and one already-paid bill. It is a no-op once any patient exists.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM patients`); err != nil {
		return fmt.Errorf("failed to count patients: %w", err)
	}
	if count > 0 {
		return nil
	}

	patients := NewPatientRepository(db)
	appointments := NewAppointmentRepository(db)
	bills := NewBillRepository(db)

	now := time.Now()
	john := &model.Patient{
		ID:        uuid.New(),
		Name:      "John Doe",
		Email:     "john@example.com",
		Phone:     "254712345678",
		Address:   "Embu Campus",
		Age:       30,
		Gender:    "Male",
		Diagnosis: "Flu",
		CreatedAt: now,
	}
	mary := &model.Patient{
		ID:        uuid.New(),
		Name:      "Mary Jane",
		Email:     "mary@example.com",
		Phone:     "254712345679",
		Address:   "Nairobi",
		Age:       25,
		Gender:    "Female",
		Diagnosis: "Allergy",
		CreatedAt: now,
	}
	for _, p := range []*model.Patient{john, mary} {
		if err := patients.Create(ctx, p); err != nil {
			return err
		}
	}

	if err := appointments.Create(ctx, &model.Appointment{
		ID:        uuid.New(),
		PatientID: john.ID,
		Doctor:    "Dr. Wanjiku",
		Date:      "2025-11-01",
		Time:      "09:00",
		Reason:    "Checkup",
		Status:    model.AppointmentStatusUpcoming,
		CreatedAt: now,
	}); err != nil {
		return err
	}

	return bills.Create(ctx, &model.Bill{
		ID:            uuid.New(),
		PatientID:     john.ID,
		Amount:        2500.0,
		PaymentMethod: "Cash",
		Status:        model.BillStatusPaid,
		TransactionID: payment.TransactionID("CASH"),
		Description:   "Consultation",
		DateIssued:    now,
	})
}
