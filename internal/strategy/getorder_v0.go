package strategy

import (
	"context"

	"github.com/programmer-tapa/order-service/internal/domain/model"
	"github.com/programmer-tapa/order-service/internal/domain/repository"
)

// GetOrderKey selects the active get-order helper.
const GetOrderKey = "GetOrderV0"

// GetOrderV0 looks orders up through the repository.
type GetOrderV0 struct {
	orders repository.OrderRepository
}

// NewGetOrderV0 constructs the helper.
func NewGetOrderV0(orders repository.OrderRepository) *GetOrderV0 {
	return &GetOrderV0{orders: orders}
}

// Find loads an order by identifier.
func (s *GetOrderV0) Find(ctx context.Context, id string) (*model.Order, error) {
	return s.orders.GetByID(ctx, id)
}
