package repository

import (
	"context"

	"github.com/programmer-tapa/order-service/internal/domain/model"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Save stores the order and its items atomically, assigning identifiers
	// to the order and every item. Returns the identified order.
	Save(ctx context.Context, order *model.Order) (*model.Order, error)
	// GetByID loads an order with its items in insertion order.
	GetByID(ctx context.Context, id string) (*model.Order, error)
}
