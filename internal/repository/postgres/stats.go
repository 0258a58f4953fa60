package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/internal/repository"
)

type statsRepository struct {
	BaseRepository
}

func NewStatsRepository(db *sqlx.DB) repository.StatsRepository {
	return &statsRepository{BaseRepository: NewBaseRepository(db)}
}

const recentLimit = 5

func (r *statsRepository) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{
		RecentAppointments: []*model.Appointment{},
		RecentBills:        []*model.Bill{},
	}

	counts := struct {
		Patients     int     `db:"patients"`
		Appointments int     `db:"appointments"`
		Unpaid       int     `db:"unpaid"`
		Total        float64 `db:"total"`
	}{}
	query := `
		SELECT
			(SELECT COUNT(*) FROM patients) AS patients,
			(SELECT COUNT(*) FROM appointments) AS appointments,
			(SELECT COUNT(*) FROM bills WHERE status = 'Pending') AS unpaid,
			(SELECT COALESCE(SUM(amount), 0) FROM bills) AS total
	`
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to load dashboard counts: %w", err)
	}
	stats.TotalPatients = counts.Patients
	stats.TotalAppointments = counts.Appointments
	stats.UnpaidBills = counts.Unpaid
	stats.TotalBilling = int64(counts.Total)

	// Recency means insertion order; seq is the insertion counter.
	appointmentsQuery := `SELECT * FROM appointments ORDER BY seq DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &stats.RecentAppointments, appointmentsQuery, recentLimit); err != nil {
		return nil, fmt.Errorf("failed to load recent appointments: %w", err)
	}

	billsQuery := `SELECT * FROM bills ORDER BY date_issued DESC, seq DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &stats.RecentBills, billsQuery, recentLimit); err != nil {
		return nil, fmt.Errorf("failed to load recent bills: %w", err)
	}

	return stats, nil
}
