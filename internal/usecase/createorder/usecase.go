// Package createorder implements the create-order business logic unit:
// validate input, build the order aggregate, then delegate persistence and
// event publication to the injected helper strategy.
package createorder

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/programmer-tapa/order-service/internal/domain/apperr"
	"github.com/programmer-tapa/order-service/internal/domain/model"
	"github.com/programmer-tapa/order-service/internal/requestctx"
)

// Operation is the canonical name used for authorization.
const Operation = "Orders.CreateOrder"

// InputItem is one requested order line.
type InputItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Input is the create-order request.
type Input struct {
	CustomerID string
	Items      []InputItem
	Currency   string
}

// Output is the create-order result.
type Output struct {
	OrderID     string          `json:"orderId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Helper is the side-effect strategy the usecase delegates to.
type Helper interface {
	// Save persists the order atomically, assigning identifiers to the
	// order and its items, and returns the identified order.
	Save(ctx context.Context, order *model.Order) (*model.Order, error)
	// Publish emits one OrderCreated notification for the saved order.
	// Publication is attempted at most once and its failure does not fail
	// the operation; persistence is the source of truth.
	Publish(ctx context.Context, order *model.Order) error
}

// Usecase creates orders. It is stateless; one instance per execution is
// built by the service layer.
type Usecase struct {
	helper Helper
	logger *slog.Logger
}

// New constructs the usecase around a helper strategy.
func New(helper Helper, logger *slog.Logger) *Usecase {
	return &Usecase{helper: helper, logger: logger}
}

// Execute validates the input, builds the order, persists it and publishes
// the OrderCreated event.
func (u *Usecase) Execute(ctx context.Context, input Input) (Output, error) {
	if err := Validate(input); err != nil {
		return Output{}, err
	}

	order := build(input)
	saved, err := u.helper.Save(ctx, order)
	if err != nil {
		return Output{}, err
	}

	if err := u.helper.Publish(ctx, saved); err != nil {
		requestctx.Logger(ctx, u.logger).Error("publish OrderCreated event",
			slog.String("order_id", saved.ID),
			slog.String("error", err.Error()),
		)
	}

	return Output{
		OrderID:     saved.ID,
		Status:      string(saved.Status),
		TotalAmount: saved.TotalAmount,
		Currency:    saved.Currency,
		CreatedAt:   saved.CreatedAt,
	}, nil
}

// Validate checks the input rules in order, stopping at the first failure.
// The messages are part of the API contract.
func Validate(input Input) error {
	if strings.TrimSpace(input.CustomerID) == "" {
		return apperr.Validation("Customer ID is required")
	}
	if len(input.Items) == 0 {
		return apperr.Validation("Order must contain at least one item")
	}
	if strings.TrimSpace(input.Currency) == "" {
		return apperr.Validation("Currency is required")
	}
	for _, item := range input.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return apperr.Validation("Product ID is required for all items")
		}
		if item.Quantity <= 0 {
			return apperr.Validation("Quantity must be greater than zero")
		}
		if item.UnitPrice.Sign() <= 0 {
			return apperr.Validation("Unit price must be greater than zero")
		}
	}
	return nil
}

func build(input Input) *model.Order {
	order := model.NewOrder(input.CustomerID, input.Currency)
	for _, item := range input.Items {
		order.AddItem(item.ProductID, "", item.Quantity, item.UnitPrice)
	}
	return order
}
