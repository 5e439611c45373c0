package app

import (
	"net/http"

	"go-leave/internal/employee"
	"go-leave/internal/leave"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func registerModules(router *gin.Engine, cfg Config, adapters Adapters) {
	// --- Services ---
	employeeService := employee.NewService(adapters.Employees)
	leaveService := leave.NewService(adapters.Employees, adapters.Leaves, adapters.Notifier)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(
		middleware.RequestID(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)
	{
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler)
	}
}
