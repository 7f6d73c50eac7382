// Package getorder implements the read-side lookup of a single order.
package getorder

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/programmer-tapa/order-service/internal/domain/apperr"
	"github.com/programmer-tapa/order-service/internal/domain/model"
)

// Operation is the canonical name used for authorization.
const Operation = "Orders.GetOrder"

// Input identifies the order to load.
type Input struct {
	OrderID string
}

// Item mirrors one stored order line.
type Item struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Output is the loaded order.
type Output struct {
	OrderID     string          `json:"orderId"`
	CustomerID  string          `json:"customerId"`
	Items       []Item          `json:"items"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Helper is the lookup strategy.
type Helper interface {
	Find(ctx context.Context, id string) (*model.Order, error)
}

// Usecase loads a single order by identifier.
type Usecase struct {
	helper Helper
}

// New constructs the usecase around a helper strategy.
func New(helper Helper) *Usecase {
	return &Usecase{helper: helper}
}

// Execute loads the order. A blank identifier is a validation failure; a
// missing order surfaces as the helper's NOT_FOUND classification.
func (u *Usecase) Execute(ctx context.Context, input Input) (Output, error) {
	if strings.TrimSpace(input.OrderID) == "" {
		return Output{}, apperr.Validation("Order ID is required")
	}

	order, err := u.helper.Find(ctx, input.OrderID)
	if err != nil {
		return Output{}, err
	}

	items := make([]Item, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}

	return Output{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Items:       items,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		CreatedAt:   order.CreatedAt,
	}, nil
}
