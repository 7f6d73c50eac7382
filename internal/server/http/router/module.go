package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	pkgAuth "github.com/programmer-tapa/order-service/internal/pkg/auth"
	"github.com/programmer-tapa/order-service/internal/server/http/handlers"
)

// Module wires HTTP handlers and the gin engine.
var Module = fx.Provide(
	handlers.NewOrderHandler,
	newEngine,
)

type routerParams struct {
	fx.In

	Orders *handlers.OrderHandler
	Tokens *pkgAuth.TokenStrategy
	Logger *slog.Logger
}

func newEngine(p routerParams) *gin.Engine {
	return Setup(p.Orders, p.Tokens, p.Logger)
}
