package authz

import (
	"go.uber.org/fx"

	"github.com/programmer-tapa/order-service/internal/config"
	"github.com/programmer-tapa/order-service/internal/service"
)

// Module provides the authorization port implementation.
var Module = fx.Provide(newAuthorizer)

func newAuthorizer(cfg *config.Config) (service.Authorizer, error) {
	return ParseGrants(cfg.RolePermissions)
}
