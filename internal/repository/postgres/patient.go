package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/internal/repository"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (id, name, email, phone, address, age, gender, diagnosis, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Name,
		patient.Email,
		patient.Phone,
		patient.Address,
		patient.Age,
		patient.Gender,
		patient.Diagnosis,
		patient.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE id = $1`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	// created_at is deliberately left out: it is immutable after creation.
	query := `
		UPDATE patients
		SET name = $1, email = $2, phone = $3, address = $4, age = $5, gender = $6, diagnosis = $7
		WHERE id = $8
	`
	res, err := r.db.ExecContext(ctx, query,
		patient.Name,
		patient.Email,
		patient.Phone,
		patient.Address,
		patient.Age,
		patient.Gender,
		patient.Diagnosis,
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("failed to update patient: %w", sql.ErrNoRows)
	}
	return nil
}

// Delete removes the patient together with all of its appointments and bills
// in one transaction. The schema carries ON DELETE CASCADE as well, but the
// children are deleted explicitly so the cascade holds on any store.
func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM appointments WHERE patient_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete patient appointments: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM bills WHERE patient_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete patient bills: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete patient: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to delete patient: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("failed to delete patient: %w", sql.ErrNoRows)
		}
		return nil
	})
}

// List returns patients in strictly reverse insertion order; seq is the
// insertion counter, so equal created_at timestamps cannot reorder it.
func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM patients ORDER BY seq DESC`
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM patients WHERE id = $1)`, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to check patient: %w", err)
	}
	return exists, nil
}
