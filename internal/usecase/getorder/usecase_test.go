package getorder

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/programmer-tapa/order-service/internal/domain/apperr"
	"github.com/programmer-tapa/order-service/internal/domain/model"
)

type stubHelper struct {
	findFn func(context.Context, string) (*model.Order, error)
	calls  int
}

func (s *stubHelper) Find(ctx context.Context, id string) (*model.Order, error) {
	s.calls++
	return s.findFn(ctx, id)
}

func TestExecuteRejectsBlankID(t *testing.T) {
	helper := &stubHelper{findFn: func(context.Context, string) (*model.Order, error) {
		t.Fatal("helper must not be called for blank id")
		return nil, nil
	}}

	_, err := New(helper).Execute(context.Background(), Input{OrderID: "  "})

	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if appErr.Message != "Order ID is required" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}

func TestExecutePropagatesNotFound(t *testing.T) {
	helper := &stubHelper{findFn: func(context.Context, string) (*model.Order, error) {
		return nil, apperr.NotFound("Order not found")
	}}

	_, err := New(helper).Execute(context.Background(), Input{OrderID: "ORD-404"})

	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestExecuteMapsOrder(t *testing.T) {
	order := model.NewOrder("CUST-123", "USD")
	order.AddItem("PROD-001", "", 2, decimal.RequireFromString("25.00"))
	order.ID = "ORD-1"

	helper := &stubHelper{findFn: func(_ context.Context, id string) (*model.Order, error) {
		if id != "ORD-1" {
			t.Fatalf("unexpected id %s", id)
		}
		return order, nil
	}}

	out, err := New(helper).Execute(context.Background(), Input{OrderID: "ORD-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OrderID != "ORD-1" || out.CustomerID != "CUST-123" {
		t.Fatalf("unexpected identifiers %s/%s", out.OrderID, out.CustomerID)
	}
	if len(out.Items) != 1 || !out.Items[0].LineTotal.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("unexpected items %+v", out.Items)
	}
	if !out.TotalAmount.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("unexpected total %s", out.TotalAmount)
	}
}
