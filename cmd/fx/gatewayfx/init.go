package gatewayfx

import (
	"go.uber.org/fx"
	"tripmood/internal/gateway"
)

var Module = fx.Provide(provideGatewayClient)

func provideGatewayClient() gateway.Client {
	return gateway.NewClient()
}
