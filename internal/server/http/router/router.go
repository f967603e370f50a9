package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pressdesk/internal/server/http/handlers"
	"github.com/polkiloo/pressdesk/internal/server/http/middleware"
)

const maxRequestBody = 1 << 20

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DashboardFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest(maxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	customerHandler := handlers.NewCustomerHandler(facade)
	employeeHandler := handlers.NewEmployeeHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")

	customers := api.Group("/customers")
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.PATCH("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	api.GET("/employees", employeeHandler.List)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.PATCH("/:id", orderHandler.Update)

	payments := api.Group("/payments")
	payments.GET("", paymentHandler.List)
	payments.POST("/:id/transactions", paymentHandler.Record)

	reports := api.Group("/reports")
	reports.GET("/summary", reportHandler.Summary)
	reports.GET("/breakdown", reportHandler.Breakdown)
	reports.GET("/export/:kind", reportHandler.Export)

	return engine
}
