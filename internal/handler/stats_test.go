package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"periscope/internal/mocks"
	"periscope/internal/model"
	"periscope/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestStatsRouter(h *StatsHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/api/v1/stats", h.List)
	router.GET("/api/v1/stats/summary", h.Summary)
	router.GET("/api/v1/stats/timeseries", h.TimeSeries)
	router.GET("/api/v1/stats/top", h.Top)
	router.GET("/api/v1/stats/hosts/:host/activity", h.HostActivity)
	router.GET("/api/v1/stats/export", h.Export)
	router.POST("/api/v1/stats/refresh", h.Refresh)
	return router
}

func sampleResult() *model.QueryResult {
	bucket := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	return &model.QueryResult{
		Records: []model.StatsRecord{{
			Key:         "HOST:a.example:DAY:2024-04-01",
			Host:        "a.example",
			BucketStart: &bucket,
			Granularity: model.GranularityDay,
			Connections: model.KnownCount(5),
		}},
		Buckets: []model.TimeBucket{{BucketStart: bucket, Connections: 5}},
		Summary: model.Summary{TotalRecords: 1, UnblockedRecords: 1, DistinctHosts: 1, Connections: 5},
		Source:  model.SourceUpstream,
	}
}

func TestNewStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockStatsServiceInterface(ctrl)
	handler := NewStatsHandler(mockService)

	assert.NotNil(t, handler)
}

func TestStatsHandler_List(t *testing.T) {
	t.Run("passes parsed params to the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().Query(gomock.Any(), model.QueryParams{
			From:        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			To:          time.Date(2024, 4, 7, 0, 0, 0, 0, time.UTC),
			Granularity: model.GranularityHour,
			Blocked:     model.BlockedFilterBlocked,
			HostFilter:  "cdn",
			FromHour:    8,
			ToHour:      18,
		}).Return(sampleResult(), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats?from_date=2024-04-01&to_date=2024-04-07&granularity=hour&blocked=blocked&host_filter=cdn&from_hour=8&to_hour=18", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, "success", resp.Message)
	})

	t.Run("unset params stay zero except the hour window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().Query(gomock.Any(), model.QueryParams{ToHour: 23}).Return(sampleResult(), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed from_date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats?from_date=04-01-2024", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Contains(t, resp.Message, "from_date")
	})

	t.Run("malformed from_hour", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats?from_hour=morning", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Contains(t, resp.Message, "from_hour")
	})

	t.Run("service validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidGranularity)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats?granularity=week", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Contains(t, resp.Message, "Failed to query stats")
	})

	t.Run("unexpected service error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestStatsHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockStatsServiceInterface(ctrl)
	router := newTestStatsRouter(NewStatsHandler(mockService))

	mockService.EXPECT().Query(gomock.Any(), gomock.Any()).Return(sampleResult(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/stats/summary", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "summary")
	assert.NotContains(t, data, "records")
	assert.NotContains(t, data, "buckets")
}

func TestStatsHandler_TimeSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockStatsServiceInterface(ctrl)
	router := newTestStatsRouter(NewStatsHandler(mockService))

	mockService.EXPECT().Query(gomock.Any(), gomock.Any()).Return(sampleResult(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/stats/timeseries", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "buckets")
	assert.NotContains(t, data, "records")
}

func TestStatsHandler_Top(t *testing.T) {
	t.Run("passes field and limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().Top(gomock.Any(), gomock.Any(), model.FieldRequestCount, 5).
			Return(&model.TopResult{Field: model.FieldRequestCount}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/top?field=request_count&n=5", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("n defaults to zero for the service to fill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().Top(gomock.Any(), gomock.Any(), model.MetricField(""), 0).
			Return(&model.TopResult{Field: model.FieldConnections}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/top", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed n", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/top?n=ten", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown field maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().Top(gomock.Any(), gomock.Any(), model.MetricField("bytes"), 0).
			Return(nil, service.ErrInvalidMetricField)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/top?field=bytes", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStatsHandler_HostActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockStatsServiceInterface(ctrl)
	router := newTestStatsRouter(NewStatsHandler(mockService))

	mockService.EXPECT().HostDetail(gomock.Any(), "a.example", gomock.Any()).
		Return(&model.HostDetail{Host: "a.example", Connections: 15}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/stats/hosts/a.example/activity", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a.example", data["host"])
}

func TestStatsHandler_Export(t *testing.T) {
	t.Run("streams a CSV attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().ExportCSV(gomock.Any(), gomock.Any()).Return(&model.CSVExport{
			Filename: "proxy_stats_day_20240401_20240407.csv",
			Data:     []byte("key,host\n"),
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/export", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "proxy_stats_day_20240401_20240407.csv")
		assert.Equal(t, "key,host\n", w.Body.String())
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().ExportCSV(gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidRange)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/export?from_date=2024-04-07&to_date=2024-04-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStatsHandler_Refresh(t *testing.T) {
	t.Run("refreshes and returns the new window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().Refresh(gomock.Any()).Return(sampleResult(), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/stats/refresh", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "success", resp.Message)
	})

	t.Run("refresh failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStatsServiceInterface(ctrl)
		router := newTestStatsRouter(NewStatsHandler(mockService))

		mockService.EXPECT().Refresh(gomock.Any()).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/stats/refresh", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
