package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/internal/repository"
	apperrors "github.com/projectx/clinic-api/pkg/errors"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	ListAppointments(ctx context.Context) ([]*model.Appointment, error)
}

// StatsInvalidator drops cached dashboard aggregates after a committed write.
type StatsInvalidator interface {
	InvalidateStats()
}

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	stats       StatsInvalidator
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository, stats StatsInvalidator) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		stats:       stats,
	}
}

func (s *Service) invalidateStats() {
	if s.stats != nil {
		s.stats.InvalidateStats()
	}
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, apperrors.Validation("invalid patient id", err)
	}

	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check patient: %w", err)
	}
	if !exists {
		return nil, apperrors.Validation("patient does not exist", nil)
	}

	appointment := &model.Appointment{
		ID:        uuid.New(),
		PatientID: patientID,
		Doctor:    req.Doctor,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
		Status:    model.AppointmentStatusUpcoming,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	s.invalidateStats()
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("appointment", err)
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	s.invalidateStats()
	return nil
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
