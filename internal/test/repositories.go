package test

import (
	"context"

	"github.com/programmer-tapa/order-service/internal/domain/model"
	"github.com/programmer-tapa/order-service/internal/events"
)

// OrderRepositoryStub records saved orders and serves lookups from memory.
type OrderRepositoryStub struct {
	SaveErr error
	GetErr  error
	Orders  map[string]*model.Order
}

func (r *OrderRepositoryStub) Save(_ context.Context, order *model.Order) (*model.Order, error) {
	if r.SaveErr != nil {
		return nil, r.SaveErr
	}
	if order.ID == "" {
		order.ID = "ORD-STUB"
	}
	if r.Orders == nil {
		r.Orders = make(map[string]*model.Order)
	}
	r.Orders[order.ID] = order
	return order, nil
}

func (r *OrderRepositoryStub) GetByID(_ context.Context, id string) (*model.Order, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	return r.Orders[id], nil
}

// PublisherStub records published events.
type PublisherStub struct {
	Err    error
	Events []events.Event
}

func (p *PublisherStub) Publish(_ context.Context, event events.Event) error {
	p.Events = append(p.Events, event)
	return p.Err
}
