package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/programmer-tapa/order-service/internal/config"
	"github.com/programmer-tapa/order-service/internal/domain/repository"
	"github.com/programmer-tapa/order-service/internal/events"
	"github.com/programmer-tapa/order-service/internal/service"
	"github.com/programmer-tapa/order-service/internal/storage/postgres"
	"github.com/programmer-tapa/order-service/internal/test"
	"github.com/programmer-tapa/order-service/internal/usecase/createorder"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:       ":0",
		DatabaseURI:      "postgres://stub",
		KafkaBrokers:     []string{"localhost:9092"},
		OrderEventsTopic: "order-events",
		TokenSecret:      "secret",
		RolePermissions:  "admin:*",
		ShutdownTimeout:  time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var createSvc *service.Service[createorder.Input, createorder.Output]
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.OrderRepository(&test.OrderRepositoryStub{})),
			fx.Replace(events.Publisher(&test.PublisherStub{})),
		),
		fx.Populate(&createSvc),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if createSvc == nil {
		t.Fatal("expected create order service instance")
	}
}
