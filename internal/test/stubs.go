// Package test provides shared stubs for unit tests across packages.
package test

import (
	"context"

	"github.com/programmer-tapa/order-service/internal/domain/model"
	"github.com/programmer-tapa/order-service/internal/service"
)

// StaticAuthorizer allows or denies every operation and records the
// operations it was asked about.
type StaticAuthorizer struct {
	Allow      bool
	Operations []string
}

func (a *StaticAuthorizer) IsAuthorized(_ context.Context, _ service.Identity, operation string) bool {
	a.Operations = append(a.Operations, operation)
	return a.Allow
}

// CreateOrderHelperStub records Save and Publish calls. Save assigns fixed
// identifiers unless SaveFn overrides it.
type CreateOrderHelperStub struct {
	SaveFn       func(context.Context, *model.Order) (*model.Order, error)
	PublishFn    func(context.Context, *model.Order) error
	SaveCalls    int
	PublishCalls int
	Published    *model.Order
}

func (s *CreateOrderHelperStub) Save(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.SaveCalls++
	if s.SaveFn != nil {
		return s.SaveFn(ctx, order)
	}
	order.ID = "ORD-STUB"
	for i := range order.Items {
		order.Items[i].ID = "ITEM-STUB"
		order.Items[i].OrderID = order.ID
	}
	return order, nil
}

func (s *CreateOrderHelperStub) Publish(ctx context.Context, order *model.Order) error {
	s.PublishCalls++
	s.Published = order
	if s.PublishFn != nil {
		return s.PublishFn(ctx, order)
	}
	return nil
}

// GetOrderHelperStub serves a fixed order or error.
type GetOrderHelperStub struct {
	Order *model.Order
	Err   error
	Calls int
}

func (s *GetOrderHelperStub) Find(context.Context, string) (*model.Order, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Order, nil
}
