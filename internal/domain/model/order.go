package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "CREATED"
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

// Valid reports whether the status belongs to the closed enumeration.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPending, OrderStatusConfirmed,
		OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered,
		OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// OrderItem is a single line of an order. Items are owned exclusively by
// their parent order; ID and OrderID are assigned at persistence time.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// Order is the aggregate root. TotalAmount is derived from the items and is
// refreshed by Recompute; mutate Items only through AddItem or call
// Recompute afterwards.
type Order struct {
	ID          string
	CustomerID  string
	Items       []OrderItem
	Status      OrderStatus
	TotalAmount decimal.Decimal
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrder creates an in-memory order with status CREATED and no items.
// The identifier stays empty until the order is persisted.
func NewOrder(customerID, currency string) *Order {
	now := time.Now().UTC()
	return &Order{
		CustomerID:  customerID,
		Status:      OrderStatusCreated,
		TotalAmount: decimal.Zero,
		Currency:    currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AddItem appends a line item, computing its line total, and refreshes the
// order total. Item insertion order is preserved.
func (o *Order) AddItem(productID, productName string, quantity int, unitPrice decimal.Decimal) {
	o.Items = append(o.Items, OrderItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
	o.Recompute()
}

// Recompute recalculates every line total and the order total. It is the
// required step after any direct mutation of Items.
func (o *Order) Recompute() {
	total := decimal.Zero
	for i := range o.Items {
		item := &o.Items[i]
		item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(item.LineTotal)
	}
	o.TotalAmount = total
	o.UpdatedAt = time.Now().UTC()
}

// SetStatus updates lifecycle status and refreshes the update timestamp.
// Transitions are not constrained at this layer.
func (o *Order) SetStatus(status OrderStatus) {
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
}
