package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/response"
)

// NewRouter builds the HTTP surface over the already-built services.
func NewRouter(a *App) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.ContextLogger(a.Logger),
		middleware.CORS(a.Config.HTTP.AllowedOrigins),
		middleware.RateLimitByIP(rate.Limit(a.Config.HTTP.RateLimitRPS), a.Config.HTTP.RateLimitBurst),
		middleware.Metrics(a.Metrics),
	)

	router.GET("/health", func(c *gin.Context) {
		if err := a.Store.SQL.PingContext(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Record store unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})
	router.GET("/metrics", gin.WrapH(a.Metrics.Handler()))

	registerModules(router, a)
	return router
}

func registerModules(router *gin.Engine, a *App) {
	// --- Handlers ---
	employeeHandler := employee.NewHandler(a.Services.Employees, a.Logger)
	attendanceHandler := attendance.NewHandler(a.Services.Attendance)
	leaveHandler := leave.NewHandler(a.Services.Leaves, a.Logger)
	payrollHandler := payroll.NewHandler(a.Services.Payroll)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		leave.RegisterRoutes(api, leaveHandler)
		payroll.RegisterRoutes(api, payrollHandler, a.Redis)
	}
}
