package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/internal/repository/mocks"
	apperrors "github.com/projectx/clinic-api/pkg/errors"
)

type statsRecorder struct{ invalidations int }

func (r *statsRecorder) InvalidateStats() { r.invalidations++ }

func newTestService() (*Service, *mocks.AppointmentRepository, *mocks.PatientRepository) {
	repo := &mocks.AppointmentRepository{}
	patientRepo := &mocks.PatientRepository{}
	return NewService(repo, patientRepo, &statsRecorder{}), repo, patientRepo
}

func TestCreateAppointment(t *testing.T) {
	svc, repo, patientRepo := newTestService()
	patientID := uuid.New()

	patientRepo.On("Exists", mock.Anything, patientID).Return(true, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Appointment")).Return(nil)

	created, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		PatientID: patientID.String(),
		Doctor:    "Dr. Wanjiku",
		Date:      "2025-11-01",
		Time:      "09:00",
		Reason:    "Checkup",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, patientID, created.PatientID)
	assert.Equal(t, model.AppointmentStatusUpcoming, created.Status)
	assert.Equal(t, "2025-11-01", created.Date)
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	svc, repo, patientRepo := newTestService()
	patientID := uuid.New()

	patientRepo.On("Exists", mock.Anything, patientID).Return(false, nil)

	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		PatientID: patientID.String(),
		Doctor:    "Dr. Who",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAppointmentBadPatientID(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		PatientID: "not-a-uuid",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(fmt.Errorf("failed to delete appointment: %w", sql.ErrNoRows))

	err := svc.DeleteAppointment(context.Background(), id)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAppointmentMutationsInvalidateDashboardStats(t *testing.T) {
	repo := &mocks.AppointmentRepository{}
	patientRepo := &mocks.PatientRepository{}
	stats := &statsRecorder{}
	svc := NewService(repo, patientRepo, stats)

	patientID := uuid.New()
	patientRepo.On("Exists", mock.Anything, patientID).Return(true, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("Delete", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		PatientID: patientID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.invalidations)

	require.NoError(t, svc.DeleteAppointment(context.Background(), created.ID))
	assert.Equal(t, 2, stats.invalidations)
}

func TestListAppointmentsKeepsStoreOrder(t *testing.T) {
	svc, repo, _ := newTestService()
	// The store orders lexicographically on the text date column; the 2024
	// appointment sorts before the 2025 one.
	appointments := []*model.Appointment{
		{ID: uuid.New(), Date: "2024-01-01"},
		{ID: uuid.New(), Date: "2025-11-01"},
	}
	repo.On("List", mock.Anything).Return(appointments, nil)

	got, err := svc.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-01", got[0].Date)
	assert.Equal(t, "2025-11-01", got[1].Date)
}
