package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tokostock/backend-go/internal/api/middleware"
	"github.com/tokostock/backend-go/internal/segmentation"
	"github.com/tokostock/backend-go/internal/service"
)

type AnalysisHandler struct {
	service *service.SegmentationService
}

func NewAnalysisHandler(service *service.SegmentationService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// RunSegmentation triggers a full segmentation batch for the request tenant.
func (h *AnalysisHandler) RunSegmentation(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	summary, err := h.service.Run(c.Request.Context(), tenantID)
	if err != nil {
		if errors.Is(err, segmentation.ErrInsufficientData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run analysis", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Clustering completed",
		"summary": summary,
	})
}

// ListRuns returns the tenant's recent segmentation runs.
func (h *AnalysisHandler) ListRuns(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 {
		limit = 20
	}

	runs, err := h.service.ListRuns(c.Request.Context(), tenantID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch runs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
