package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tokostock/backend-go/internal/api/middleware"
	"github.com/tokostock/backend-go/internal/service"
)

type RestockHandler struct {
	service *service.RestockService
}

func NewRestockHandler(service *service.RestockService) *RestockHandler {
	return &RestockHandler{service: service}
}

// GetAlerts returns the tenant's current restock alerts, lowest stock first.
func (h *RestockHandler) GetAlerts(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	alerts, err := h.service.GetAlerts(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch alerts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
