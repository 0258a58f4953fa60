package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/internal/repository/mocks"
	dashboardService "github.com/projectx/clinic-api/internal/service/dashboard"
)

func TestGetStatsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &mocks.StatsRepository{}
	repo.On("DashboardStats", mock.Anything).Return(&model.DashboardStats{
		TotalPatients:     2,
		TotalAppointments: 1,
		UnpaidBills:       1,
		TotalBilling:      2500,
		RecentAppointments: []*model.Appointment{
			{ID: uuid.New(), Doctor: "Dr. Wanjiku"},
		},
		RecentBills: []*model.Bill{
			{ID: uuid.New(), Amount: 2500, Status: model.BillStatusPaid},
		},
	}, nil)

	engine := gin.New()
	NewHandler(dashboardService.NewService(repo, time.Minute)).RegisterRoutes(engine.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string               `json:"status"`
		Data   model.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.Data.TotalPatients)
	assert.Equal(t, int64(2500), resp.Data.TotalBilling)
	assert.Len(t, resp.Data.RecentAppointments, 1)
	assert.Len(t, resp.Data.RecentBills, 1)
}
