package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты сервиса
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Системные маршруты
	r.GET("/healthcheck", h.healthCheck)
	r.GET("/", h.index)

	// Маршруты для управления записями о пожарах (CRUD)
	fires := r.Group("/fires")
	{
		fires.GET("", h.listFireIncidents)
		fires.POST("", h.createFireIncident)
		fires.GET("/:object_id", h.getFireIncident)
		fires.PUT("/:object_id", h.updateFireIncident)
		fires.DELETE("/:object_id", h.deleteFireIncident)
	}
}
