// Package strategy holds the versioned helper implementations backing the
// business logic units, plus the registries they are resolved from. New
// versions register side by side under their own keys; the active key is
// fixed at startup.
package strategy

import (
	"context"

	"github.com/programmer-tapa/order-service/internal/domain/model"
	"github.com/programmer-tapa/order-service/internal/domain/repository"
	"github.com/programmer-tapa/order-service/internal/events"
)

// CreateOrderKey selects the active create-order helper.
const CreateOrderKey = "CreateOrderV0"

// OrderCreatedEventName labels the notification emitted after persistence.
const OrderCreatedEventName = "OrderCreated"

// CreateOrderV0 persists orders through the repository and publishes the
// OrderCreated notification.
type CreateOrderV0 struct {
	orders    repository.OrderRepository
	publisher events.Publisher
}

// NewCreateOrderV0 constructs the helper.
func NewCreateOrderV0(orders repository.OrderRepository, publisher events.Publisher) *CreateOrderV0 {
	return &CreateOrderV0{orders: orders, publisher: publisher}
}

// Save stores the order, assigning identifiers.
func (s *CreateOrderV0) Save(ctx context.Context, order *model.Order) (*model.Order, error) {
	return s.orders.Save(ctx, order)
}

// Publish emits the OrderCreated event for the saved order.
func (s *CreateOrderV0) Publish(ctx context.Context, order *model.Order) error {
	return s.publisher.Publish(ctx, OrderCreatedEvent(order))
}

// OrderCreatedEvent builds the notification body for a saved order.
func OrderCreatedEvent(order *model.Order) events.Event {
	items := make([]map[string]any, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, map[string]any{
			"productId": item.ProductID,
			"quantity":  item.Quantity,
			"unitPrice": item.UnitPrice,
			"lineTotal": item.LineTotal,
		})
	}

	return events.Event{
		ID:   order.ID,
		Name: OrderCreatedEventName,
		Data: map[string]any{
			"orderId":     order.ID,
			"customerId":  order.CustomerID,
			"items":       items,
			"totalAmount": order.TotalAmount,
			"currency":    order.Currency,
			"status":      string(order.Status),
			"createdAt":   order.CreatedAt,
		},
	}
}
