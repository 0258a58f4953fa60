// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/projectx/clinic-api/internal/model"
)

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *PatientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PatientRepository) Update(ctx context.Context, patient *model.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*model.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PatientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AppointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.([]*model.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	args := m.Called(ctx, patientID)
	if a := args.Get(0); a != nil {
		return a.([]*model.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type BillRepository struct {
	mock.Mock
}

func (m *BillRepository) Create(ctx context.Context, bill *model.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *BillRepository) Get(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*model.Bill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BillRepository) List(ctx context.Context) ([]*model.Bill, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]*model.Bill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BillRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Bill, error) {
	args := m.Called(ctx, patientID)
	if b := args.Get(0); b != nil {
		return b.([]*model.Bill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BillRepository) MarkPaid(ctx context.Context, bill *model.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(*model.DashboardStats), args.Error(1)
	}
	return nil, args.Error(1)
}
