package auth

import (
	"go.uber.org/fx"

	"github.com/programmer-tapa/order-service/internal/config"
)

// Module provides identity token primitives via fx.
var Module = fx.Provide(newTokenStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) *TokenStrategy {
	return NewTokenStrategy(p.Config.TokenSecret, Options{})
}
