package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("", h.GetAll)
		attendance.GET("/monthly", h.Monthly)
		attendance.POST("", h.Mark)
	}
}
