package authz

import (
	"context"
	"testing"

	"github.com/programmer-tapa/order-service/internal/service"
)

func TestParseGrantsRejectsMalformedSpec(t *testing.T) {
	for _, spec := range []string{"", "customer", "customer:", ":Orders.CreateOrder"} {
		if _, err := ParseGrants(spec); err == nil {
			t.Fatalf("spec %q: expected error", spec)
		}
	}
}

func TestIsAuthorizedSpecificOperation(t *testing.T) {
	auth, err := ParseGrants("customer:Orders.CreateOrder,Orders.GetOrder")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	identity := service.Identity{ID: "u1", Role: "customer"}
	if !auth.IsAuthorized(context.Background(), identity, "Orders.CreateOrder") {
		t.Fatal("expected customer to create orders")
	}
	if auth.IsAuthorized(context.Background(), identity, "Orders.CancelOrder") {
		t.Fatal("ungranted operation must be denied")
	}
}

func TestIsAuthorizedWildcard(t *testing.T) {
	auth, err := ParseGrants("admin:*;customer:Orders.GetOrder")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	admin := service.Identity{ID: "a1", Role: "admin"}
	if !auth.IsAuthorized(context.Background(), admin, "Orders.CreateOrder") {
		t.Fatal("expected wildcard to allow any operation")
	}
}

func TestIsAuthorizedUnknownRoleDenied(t *testing.T) {
	auth, err := ParseGrants("admin:*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.IsAuthorized(context.Background(), service.Identity{Role: "guest"}, "Orders.CreateOrder") {
		t.Fatal("unknown role must be denied")
	}
}
