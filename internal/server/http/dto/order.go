package dto

import (
	"github.com/shopspring/decimal"

	"github.com/programmer-tapa/order-service/internal/usecase/createorder"
)

// CreateOrderItem is one requested line in the create-order request body.
type CreateOrderItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateOrderRequest is the POST /api/v0/orders/create body.
type CreateOrderRequest struct {
	CustomerID string            `json:"customerId"`
	Items      []CreateOrderItem `json:"items"`
	Currency   string            `json:"currency"`
}

// ToInput converts the request body into the usecase input.
func (r CreateOrderRequest) ToInput() createorder.Input {
	items := make([]createorder.InputItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, createorder.InputItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return createorder.Input{
		CustomerID: r.CustomerID,
		Items:      items,
		Currency:   r.Currency,
	}
}
