package strategy

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/programmer-tapa/order-service/internal/domain/repository"
	"github.com/programmer-tapa/order-service/internal/events"
	"github.com/programmer-tapa/order-service/internal/service"
	"github.com/programmer-tapa/order-service/internal/usecase/createorder"
	"github.com/programmer-tapa/order-service/internal/usecase/getorder"
)

// Module registers helper strategies and builds the orchestrated services.
// A missing or duplicate registry key fails application startup.
var Module = fx.Provide(
	newCreateOrderRegistry,
	newGetOrderRegistry,
	newCreateOrderService,
	newGetOrderService,
)

func newCreateOrderRegistry(orders repository.OrderRepository, publisher events.Publisher) (*service.Registry[createorder.Helper], error) {
	registry := service.NewRegistry[createorder.Helper]()
	if err := registry.Register(CreateOrderKey, NewCreateOrderV0(orders, publisher)); err != nil {
		return nil, err
	}
	return registry, nil
}

func newGetOrderRegistry(orders repository.OrderRepository) (*service.Registry[getorder.Helper], error) {
	registry := service.NewRegistry[getorder.Helper]()
	if err := registry.Register(GetOrderKey, NewGetOrderV0(orders)); err != nil {
		return nil, err
	}
	return registry, nil
}

func newCreateOrderService(registry *service.Registry[createorder.Helper], auth service.Authorizer, logger *slog.Logger) *service.Service[createorder.Input, createorder.Output] {
	helper := registry.MustResolve(CreateOrderKey)
	build := func(createorder.Input) service.Usecase[createorder.Input, createorder.Output] {
		return createorder.New(helper, logger)
	}
	return service.New(createorder.Operation, auth, build, logger)
}

func newGetOrderService(registry *service.Registry[getorder.Helper], auth service.Authorizer, logger *slog.Logger) *service.Service[getorder.Input, getorder.Output] {
	helper := registry.MustResolve(GetOrderKey)
	build := func(getorder.Input) service.Usecase[getorder.Input, getorder.Output] {
		return getorder.New(helper)
	}
	return service.New(getorder.Operation, auth, build, logger)
}
