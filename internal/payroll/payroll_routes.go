package payroll

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-payroll/internal/middleware"
)

// RegisterRoutes mounts /payrolls. When a redis client is given, generation
// is guarded by the Idempotency-Key middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", handler.GetAll)
		payrolls.GET("/export", handler.ExportRegister)
		payrolls.GET("/:id/payslip", handler.DownloadPayslip)
		if redisClient != nil {
			payrolls.POST("", middleware.Idempotency(redisClient, zap.L()), handler.Generate)
		} else {
			payrolls.POST("", handler.Generate)
		}
	}
}
