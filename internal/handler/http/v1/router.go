package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every v1 route
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	secured := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		secured.POST("/location-updates", h.submitLocationUpdate)
		secured.GET("/stats", h.getStats)
	}

	api.GET("/system/health", h.healthCheck)
}
