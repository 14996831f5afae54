package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// TenantHeader carries the owner (tenant) id on every request. Authentication
// itself lives upstream; by the time a request reaches this service the
// gateway has already resolved the session to an owner id.
const TenantHeader = "X-Owner-ID"

const tenantContextKey = "tenant_id"

// Tenant extracts and validates the owner id header, rejecting requests
// without one. All data access below this point is scoped to that tenant.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(TenantHeader))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Owner ID required"})
			return
		}

		tenantID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || tenantID <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid owner ID"})
			return
		}

		c.Set(tenantContextKey, tenantID)
		c.Next()
	}
}

// TenantID returns the tenant id set by the Tenant middleware.
func TenantID(c *gin.Context) int64 {
	return c.GetInt64(tenantContextKey)
}
