package appointment

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/internal/repository/mocks"
	appointmentService "github.com/projectx/clinic-api/internal/service/appointment"
)

func newTestRouter() (*gin.Engine, *mocks.AppointmentRepository, *mocks.PatientRepository) {
	gin.SetMode(gin.TestMode)

	repo := &mocks.AppointmentRepository{}
	patientRepo := &mocks.PatientRepository{}
	svc := appointmentService.NewService(repo, patientRepo, nil)

	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine, repo, patientRepo
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	engine, repo, patientRepo := newTestRouter()
	patientID := uuid.New()

	patientRepo.On("Exists", mock.Anything, patientID).Return(true, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/appointments", map[string]string{
		"patient_id": patientID.String(),
		"doctor":     "Dr. Wanjiku",
		"date":       "2025-11-01",
		"time":       "09:00",
		"reason":     "Checkup",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.AppointmentStatusUpcoming, resp.Data.Status)
}

func TestCreateAppointmentUnknownPatientEndpoint(t *testing.T) {
	engine, _, patientRepo := newTestRouter()
	patientID := uuid.New()
	patientRepo.On("Exists", mock.Anything, patientID).Return(false, nil)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/appointments", map[string]string{
		"patient_id": patientID.String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAppointmentsEndpoint(t *testing.T) {
	engine, repo, _ := newTestRouter()
	repo.On("List", mock.Anything).Return([]*model.Appointment{
		{ID: uuid.New(), Date: "2024-01-01"},
		{ID: uuid.New(), Date: "2025-11-01"},
	}, nil)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/appointments", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "2024-01-01", resp.Data[0].Date)
}

func TestDeleteAppointmentNotFoundEndpoint(t *testing.T) {
	engine, repo, _ := newTestRouter()
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(fmt.Errorf("failed to delete appointment: %w", sql.ErrNoRows))

	w := doRequest(t, engine, http.MethodDelete, "/api/v1/appointments/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
