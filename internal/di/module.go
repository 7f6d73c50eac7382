package di

import (
	"go.uber.org/fx"

	"github.com/programmer-tapa/order-service/internal/app"
	"github.com/programmer-tapa/order-service/internal/authz"
	"github.com/programmer-tapa/order-service/internal/config"
	"github.com/programmer-tapa/order-service/internal/events"
	"github.com/programmer-tapa/order-service/internal/logger"
	"github.com/programmer-tapa/order-service/internal/pkg/auth"
	"github.com/programmer-tapa/order-service/internal/server/http/router"
	"github.com/programmer-tapa/order-service/internal/storage/postgres"
	"github.com/programmer-tapa/order-service/internal/strategy"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		authz.Module,
		postgres.Module,
		events.Module,
		strategy.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
