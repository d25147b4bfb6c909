package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.GetAll)
		leaves.POST("", handler.Apply)
		leaves.POST("/:id/approve", handler.Approve)
		leaves.POST("/:id/reject", handler.Reject)
	}
}
