package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"periscope/internal/model"
	"periscope/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles proxy stats queries
type StatsHandler struct {
	service service.StatsServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(service service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

// List handles GET /api/v1/stats
// @Summary Query proxy stats
// @Description Returns per-host stats for a date window, busiest hosts first
// @Tags stats
// @Produce json
// @Param from_date query string false "Window start (YYYY-MM-DD)"
// @Param to_date query string false "Window end (YYYY-MM-DD)"
// @Param granularity query string false "day or hour"
// @Param blocked query string false "all, blocked or unblocked"
// @Param host_filter query string false "Host substring filter"
// @Param from_hour query int false "First hour to include (hourly stats)"
// @Param to_hour query int false "Last hour to include (hourly stats)"
// @Success 200 {object} Response{data=model.QueryResult}
// @Router /api/v1/stats [get]
func (h *StatsHandler) List(c *gin.Context) {
	params, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	result, err := h.service.Query(c.Request.Context(), params)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to query stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    result,
	})
}

// Summary handles GET /api/v1/stats/summary
// @Summary Summarize proxy stats
// @Description Returns window totals without the per-host records
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=model.QueryResult}
// @Router /api/v1/stats/summary [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	params, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	result, err := h.service.Query(c.Request.Context(), params)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to query stats: " + err.Error(),
		})
		return
	}

	// overview cards only need the totals
	result.Records = nil
	result.Buckets = nil

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    result,
	})
}

// TimeSeries handles GET /api/v1/stats/timeseries
// @Summary Proxy stats over time
// @Description Returns per-bucket sums for charting, oldest bucket first
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=model.QueryResult}
// @Router /api/v1/stats/timeseries [get]
func (h *StatsHandler) TimeSeries(c *gin.Context) {
	params, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	result, err := h.service.Query(c.Request.Context(), params)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to query stats: " + err.Error(),
		})
		return
	}

	result.Records = nil

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    result,
	})
}

// Top handles GET /api/v1/stats/top
// @Summary Top hosts by one metric
// @Description Returns the hosts with the largest values of the requested metric
// @Tags stats
// @Produce json
// @Param field query string false "connections, request_count, blocked_attempts or bytes_transferred_mb"
// @Param n query int false "Number of records to return" default(20)
// @Success 200 {object} Response{data=model.TopResult}
// @Router /api/v1/stats/top [get]
func (h *StatsHandler) Top(c *gin.Context) {
	params, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	n, err := strconv.Atoi(c.DefaultQuery("n", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid request: n %q is not an integer", c.Query("n")),
		})
		return
	}

	result, err := h.service.Top(c.Request.Context(), params, model.MetricField(c.Query("field")), n)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to rank stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    result,
	})
}

// HostActivity handles GET /api/v1/stats/hosts/:host/activity
// @Summary Drill into one host
// @Description Returns summed metrics, known IPs and per-bucket activity for a host
// @Tags stats
// @Param host path string true "Host name"
// @Success 200 {object} Response{data=model.HostDetail}
// @Router /api/v1/stats/hosts/{host}/activity [get]
func (h *StatsHandler) HostActivity(c *gin.Context) {
	params, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	detail, err := h.service.HostDetail(c.Request.Context(), c.Param("host"), params)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to get host activity: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    detail,
	})
}

// Export handles GET /api/v1/stats/export
// @Summary Export proxy stats as CSV
// @Description Streams the queried window as a CSV download
// @Tags stats
// @Produce text/csv
// @Success 200 {string} string "CSV data"
// @Router /api/v1/stats/export [get]
func (h *StatsHandler) Export(c *gin.Context) {
	params, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	export, err := h.service.ExportCSV(c.Request.Context(), params)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to export stats: " + err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.Data)
}

// Refresh handles POST /api/v1/stats/refresh
// @Summary Force a refresh
// @Description Drops cached envelopes and refetches the default window
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=model.QueryResult}
// @Router /api/v1/stats/refresh [post]
func (h *StatsHandler) Refresh(c *gin.Context) {
	result, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to refresh stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    result,
	})
}

// parseQuery reads the stats query parameters shared by every stats route.
// Dates use the YYYY-MM-DD layout; unset values stay zero so the service can
// apply its defaults.
func parseQuery(c *gin.Context) (model.QueryParams, error) {
	var params model.QueryParams

	if v := c.Query("from_date"); v != "" {
		t, err := time.Parse(model.DateLayout, v)
		if err != nil {
			return params, fmt.Errorf("from_date %q is not a YYYY-MM-DD date", v)
		}
		params.From = t
	}
	if v := c.Query("to_date"); v != "" {
		t, err := time.Parse(model.DateLayout, v)
		if err != nil {
			return params, fmt.Errorf("to_date %q is not a YYYY-MM-DD date", v)
		}
		params.To = t
	}

	params.Granularity = model.Granularity(c.Query("granularity"))
	params.Blocked = model.BlockedFilter(c.Query("blocked"))
	params.HostFilter = c.Query("host_filter")

	fromHour, err := strconv.Atoi(c.DefaultQuery("from_hour", "0"))
	if err != nil {
		return params, fmt.Errorf("from_hour %q is not an integer", c.Query("from_hour"))
	}
	params.FromHour = fromHour

	toHour, err := strconv.Atoi(c.DefaultQuery("to_hour", "23"))
	if err != nil {
		return params, fmt.Errorf("to_hour %q is not an integer", c.Query("to_hour"))
	}
	params.ToHour = toHour

	return params, nil
}

// statusFor maps service validation failures to 400; anything else is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrInvalidGranularity),
		errors.Is(err, service.ErrInvalidBlockedFilter),
		errors.Is(err, service.ErrInvalidHourRange),
		errors.Is(err, service.ErrInvalidMetricField):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
