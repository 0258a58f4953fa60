package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/internal/repository"
	apperrors "github.com/projectx/clinic-api/pkg/errors"
)

type PatientService interface {
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*model.PatientDetail, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
	ListPatients(ctx context.Context) ([]*model.Patient, error)
}

// StatsInvalidator drops cached dashboard aggregates after a committed write.
type StatsInvalidator interface {
	InvalidateStats()
}

type Service struct {
	repo            repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	billRepo        repository.BillRepository
	stats           StatsInvalidator
}

func NewService(repo repository.PatientRepository, appointmentRepo repository.AppointmentRepository, billRepo repository.BillRepository, stats StatsInvalidator) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		billRepo:        billRepo,
		stats:           stats,
	}
}

func (s *Service) invalidateStats() {
	if s.stats != nil {
		s.stats.InvalidateStats()
	}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	age, err := parseAge(req.Age)
	if err != nil {
		return nil, err
	}

	patient := &model.Patient{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Age:       age,
		Gender:    req.Gender,
		Diagnosis: req.Diagnosis,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	s.invalidateStats()
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.PatientDetail, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	appointments, err := s.appointmentRepo.ListByPatient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient appointments: %w", err)
	}
	bills, err := s.billRepo.ListByPatient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient bills: %w", err)
	}

	return &model.PatientDetail{
		Patient:      *patient,
		Appointments: appointments,
		Bills:        bills,
	}, nil
}

// UpdatePatient overwrites every mutable field with the supplied values;
// created_at is never touched.
func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	age, err := parseAge(req.Age)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patient := &model.Patient{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Age:       age,
		Gender:    req.Gender,
		Diagnosis: req.Diagnosis,
		CreatedAt: existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	s.invalidateStats()
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("patient", err)
		}
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	s.invalidateStats()
	return nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// parseAge is deliberately lenient: missing or unparseable input falls back
// to 0 instead of failing. Negative ages are the one thing rejected.
func parseAge(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil
	}
	if age < 0 {
		return 0, apperrors.Validation("age must be non-negative", nil)
	}
	return age, nil
}
