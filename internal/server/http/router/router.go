package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	pkgAuth "github.com/programmer-tapa/order-service/internal/pkg/auth"
	"github.com/programmer-tapa/order-service/internal/server/http/handlers"
	"github.com/programmer-tapa/order-service/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(orders *handlers.OrderHandler, tokens *pkgAuth.TokenStrategy, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.Correlation())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.Identity(tokens))

	api := engine.Group("/api/v0")
	orderRoutes := api.Group("/orders")
	orderRoutes.POST("/create", orders.Create)
	orderRoutes.GET("/:id", orders.Get)

	return engine
}
