package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paxscan/internal/domain"
	"paxscan/internal/handler"
	"paxscan/mocks"
)

func statsRouter(svc *mocks.MockStatsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewStatsHandler(svc)
	r.GET("/api/v1/stats", h.GetStats)
	r.GET("/api/v1/stats/report", h.GetStatsReport)
	return r
}

func TestGetStats(t *testing.T) {
	svc := new(mocks.MockStatsService)
	svc.On("GetStats", mock.Anything).Return(&domain.Stats{
		TotalAttempts:  4,
		TotalSuccesses: 3,
		PerStrategy: []domain.StrategyStats{
			{Strategy: domain.StrategyRemoteVision, Attempts: 4, Successes: 3, Failures: 1},
		},
	}, nil)

	w := httptest.NewRecorder()
	statsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(4), data["total_attempts"])
}

func TestGetStats_RepoError(t *testing.T) {
	svc := new(mocks.MockStatsService)
	svc.On("GetStats", mock.Anything).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	statsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}

func TestGetStatsReport(t *testing.T) {
	content := []byte("workbook-bytes")
	svc := new(mocks.MockStatsService)
	svc.On("StatsReport", mock.Anything).Return("extraction-stats-2026-09-01.xlsx", content, nil)

	w := httptest.NewRecorder()
	statsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats/report", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="extraction-stats-2026-09-01.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Equal(t, content, w.Body.Bytes())
}

func TestHealthLiveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewHealthHandler(nil)
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	}
}
