package handler

import (
	"net/http"

	"periscope/internal/service"

	"github.com/gin-gonic/gin"
)

// GeoHandler handles host geolocation queries
type GeoHandler struct {
	service service.GeoServiceInterface
}

// NewGeoHandler creates a new GeoHandler
func NewGeoHandler(service service.GeoServiceInterface) *GeoHandler {
	return &GeoHandler{service: service}
}

// Geo handles GET /api/v1/geo
// @Summary Host geolocation table
// @Description Returns the geolocation record of every observed host
// @Tags geo
// @Produce json
// @Success 200 {object} Response{data=model.GeoResult}
// @Router /api/v1/geo [get]
func (h *GeoHandler) Geo(c *gin.Context) {
	result, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get geo data: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    result,
	})
}

// GeoSummary handles GET /api/v1/geo/summary
// @Summary Host geolocation summary
// @Description Returns per-country host counts and the map point list
// @Tags geo
// @Produce json
// @Success 200 {object} Response{data=model.GeoSummary}
// @Router /api/v1/geo/summary [get]
func (h *GeoHandler) GeoSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get geo summary: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    summary,
	})
}
