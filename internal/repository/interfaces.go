package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/projectx/clinic-api/internal/model"
)

// All repository interfaces in one file
type (
	// PatientRepository handles patient storage. Delete cascades to the
	// patient's appointments and bills within a single transaction.
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Patient, error)
		Exists(ctx context.Context, id uuid.UUID) (bool, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Appointment, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error)
	}

	BillRepository interface {
		Create(ctx context.Context, bill *model.Bill) error
		Get(ctx context.Context, id uuid.UUID) (*model.Bill, error)
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Bill, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Bill, error)
		MarkPaid(ctx context.Context, bill *model.Bill) error
	}

	// StatsRepository serves the dashboard aggregates.
	StatsRepository interface {
		DashboardStats(ctx context.Context) (*model.DashboardStats, error)
	}
)
