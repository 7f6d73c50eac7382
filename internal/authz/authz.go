// Package authz implements the authorization port with a role-based
// allow-list of operation names.
package authz

import (
	"context"
	"fmt"
	"strings"

	"github.com/programmer-tapa/order-service/internal/service"
)

// Wildcard grants a role every operation.
const Wildcard = "*"

// RoleAuthorizer authorizes identities by role. Unknown roles and unknown
// operations are denied.
type RoleAuthorizer struct {
	grants map[string]map[string]struct{}
}

// ParseGrants builds a RoleAuthorizer from a spec of the form
// "admin:*;customer:Orders.CreateOrder,Orders.GetOrder".
func ParseGrants(spec string) (*RoleAuthorizer, error) {
	grants := make(map[string]map[string]struct{})
	for _, entry := range strings.Split(spec, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		role, operations, ok := strings.Cut(entry, ":")
		role = strings.TrimSpace(role)
		if !ok || role == "" {
			return nil, fmt.Errorf("invalid role grant %q", entry)
		}
		set := make(map[string]struct{})
		for _, op := range strings.Split(operations, ",") {
			op = strings.TrimSpace(op)
			if op == "" {
				continue
			}
			set[op] = struct{}{}
		}
		if len(set) == 0 {
			return nil, fmt.Errorf("role %q grants no operations", role)
		}
		grants[role] = set
	}
	if len(grants) == 0 {
		return nil, fmt.Errorf("no role grants configured")
	}
	return &RoleAuthorizer{grants: grants}, nil
}

// IsAuthorized reports whether the identity's role may run the operation.
func (a *RoleAuthorizer) IsAuthorized(_ context.Context, identity service.Identity, operation string) bool {
	operations, ok := a.grants[identity.Role]
	if !ok {
		return false
	}
	if _, ok := operations[Wildcard]; ok {
		return true
	}
	_, ok = operations[operation]
	return ok
}
