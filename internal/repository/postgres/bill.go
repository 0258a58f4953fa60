package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/internal/repository"
)

type billRepository struct {
	BaseRepository
}

func NewBillRepository(db *sqlx.DB) repository.BillRepository {
	return &billRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *billRepository) Create(ctx context.Context, bill *model.Bill) error {
	query := `
		INSERT INTO bills (id, patient_id, amount, payment_method, status, transaction_id, description, date_issued)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		bill.ID,
		bill.PatientID,
		bill.Amount,
		bill.PaymentMethod,
		bill.Status,
		bill.TransactionID,
		bill.Description,
		bill.DateIssued,
	)
	if err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

func (r *billRepository) Get(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	query := `SELECT * FROM bills WHERE id = $1`
	var bill model.Bill
	if err := r.db.GetContext(ctx, &bill, query, id); err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return &bill, nil
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("failed to delete bill: %w", sql.ErrNoRows)
	}
	return nil
}

func (r *billRepository) List(ctx context.Context) ([]*model.Bill, error) {
	query := `SELECT * FROM bills ORDER BY date_issued DESC, seq DESC`
	bills := []*model.Bill{}
	if err := r.db.SelectContext(ctx, &bills, query); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (r *billRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Bill, error) {
	query := `SELECT * FROM bills WHERE patient_id = $1 ORDER BY date_issued DESC, seq DESC`
	bills := []*model.Bill{}
	if err := r.db.SelectContext(ctx, &bills, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list patient bills: %w", err)
	}
	return bills, nil
}

func (r *billRepository) MarkPaid(ctx context.Context, bill *model.Bill) error {
	query := `
		UPDATE bills
		SET payment_method = $1, transaction_id = $2, status = $3
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, query,
		bill.PaymentMethod,
		bill.TransactionID,
		bill.Status,
		bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark bill paid: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark bill paid: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("failed to mark bill paid: %w", sql.ErrNoRows)
	}
	return nil
}
